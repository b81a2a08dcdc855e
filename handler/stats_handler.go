package handler

import (
	"log"

	"studyhub/repository"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type StatsRepos struct {
	Users  *repository.UsersRepo
	Notes  *repository.NotesRepo
	Doubts *repository.DoubtsRepo
}

// StatsHandler reports system load and collection counts.
func StatsHandler(c *gin.Context, repos StatsRepos) {
	ctx := c.Request.Context()

	users, err := repos.Users.CountUsers(ctx)
	if err != nil {
		log.Printf("failed to count users: %v", err)
	}
	notes, err := repos.Notes.CountNotes(ctx)
	if err != nil {
		log.Printf("failed to count notes: %v", err)
	}
	doubts, err := repos.Doubts.CountDoubts(ctx)
	if err != nil {
		log.Printf("failed to count doubts: %v", err)
	}

	utils.Success(c, "", gin.H{
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
		"users":          users,
		"notes":          notes,
		"doubts":         doubts,
	})
}
