package handler

import (
	"studyhub/dto"
	"studyhub/middleware"
	"studyhub/model"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// ListDoubtsHandler serves the public board: no authentication, all doubts,
// newest first, authors populated.
func ListDoubtsHandler(c *gin.Context, doubtsService *usecase.DoubtsService) {
	doubts, authors, err := doubtsService.ListDoubts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "", gin.H{"doubts": dto.ToDoubtResponses(doubts, authors)})
}

func CreateDoubtHandler(c *gin.Context, doubtsService *usecase.DoubtsService) {
	var req struct {
		Question    string   `json:"question"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	doubt := &model.Doubt{
		UserID:      c.GetString(middleware.ContextUserIDKey),
		Question:    req.Question,
		Description: req.Description,
		Tags:        req.Tags,
	}

	if err := doubtsService.CreateDoubt(c.Request.Context(), doubt); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Doubt posted successfully", gin.H{"doubt": doubt})
}

// AnswerDoubtHandler appends an answer; any authenticated caller may answer
// any doubt.
func AnswerDoubtHandler(c *gin.Context, doubtsService *usecase.DoubtsService) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	doubtID := c.Param("id")
	userID := c.GetString(middleware.ContextUserIDKey)

	answer, err := doubtsService.AnswerDoubt(c.Request.Context(), doubtID, userID, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Answer posted successfully", gin.H{"answer": answer})
}

// ResolveDoubtHandler toggles the resolution flag; owner only, and a
// non-owner gets 403 rather than 404.
func ResolveDoubtHandler(c *gin.Context, doubtsService *usecase.DoubtsService) {
	var req struct {
		IsResolved *bool `json:"is_resolved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "is_resolved is required")
		return
	}

	doubtID := c.Param("id")
	userID := c.GetString(middleware.ContextUserIDKey)

	if err := doubtsService.ResolveDoubt(c.Request.Context(), doubtID, userID, *req.IsResolved); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Doubt resolution updated", gin.H{"is_resolved": *req.IsResolved})
}
