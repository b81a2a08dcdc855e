package handler

import (
	"studyhub/middleware"
	"studyhub/model"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type noteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.ContextUserIDKey)

	notes, err := notesService.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "", gin.H{"notes": notes})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note := &model.Note{
		UserID:  c.GetString(middleware.ContextUserIDKey),
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	if err := notesService.CreateNote(c.Request.Context(), note); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Note created successfully", gin.H{"note": note})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserIDKey)

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updates := &model.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	// Cross-owner updates surface as not-found: existence is not leaked
	if err := notesService.UpdateNote(c.Request.Context(), noteID, userID, updates); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note updated successfully", nil)
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserIDKey)

	if err := notesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note deleted successfully", nil)
}
