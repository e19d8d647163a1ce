package handler

import (
	"net/http"

	"github.com/plnalaca/pera/internal/adapter/http/dto"
	"github.com/plnalaca/pera/internal/core/ports"
	"github.com/plnalaca/pera/pkg/apperror"
	"github.com/plnalaca/pera/pkg/response"

	"github.com/gin-gonic/gin"
)

// LessonHandler handles completed-lesson retrieval.
type LessonHandler struct {
	lessonSvc ports.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonSvc ports.LessonService) *LessonHandler {
	return &LessonHandler{lessonSvc: lessonSvc}
}

// GetCompletedLessons handles GET /getCompletedLessons?public_key=...
func (h *LessonHandler) GetCompletedLessons(c *gin.Context) {
	publicKey, ok := c.GetQuery("public_key")
	if !ok {
		response.Error(c, apperror.Validation("public_key query parameter is required"))
		return
	}

	result, err := h.lessonSvc.CompletedLessons(c.Request.Context(), publicKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	lessons := make([]dto.LessonRecordPayload, 0, len(result.Records))
	for _, rec := range result.Records {
		lessons = append(lessons, dto.LessonRecordPayload{
			ID:           rec.ID,
			CreationTime: rec.CreationTime,
			Lesson:       rec.Lessons,
		})
	}

	c.JSON(http.StatusOK, dto.CompletedLessonsResponse{
		Status:      string(result.Status),
		PublicKey:   result.WalletCode,
		LessonCount: len(lessons),
		Lessons:     lessons,
	})
}
