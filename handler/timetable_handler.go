package handler

import (
	"studyhub/middleware"
	"studyhub/model"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// GetTimetableHandler returns the caller's timetable, materializing the
// default empty week on first read.
func GetTimetableHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	userID := c.GetString(middleware.ContextUserIDKey)

	timetable, err := timetableService.GetTimetable(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "", gin.H{"timetable": timetable})
}

// ReplaceTimetableHandler overwrites the caller's week with the posted days.
func ReplaceTimetableHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	var req struct {
		Days []model.DaySchedule `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)

	timetable, err := timetableService.ReplaceTimetable(c.Request.Context(), userID, req.Days)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Timetable saved", gin.H{"timetable": timetable})
}
