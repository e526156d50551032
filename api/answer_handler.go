// api/answer_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/resumecoach/history"
)

////////////////////////////////////////////////////////////////////////
// POST /evaluate
////////////////////////////////////////////////////////////////////////

type evaluateAnswerRequest struct {
	Answer   string `json:"answer"`
	Question string `json:"question" binding:"notblank"`
}

// evaluateAnswer scores an answer and appends it to history.
func (server *Server) evaluateAnswer(ctx *gin.Context) {
	var req evaluateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	eval, err := server.evaluator.Evaluate(ctx, req.Question, req.Answer)
	if err != nil {
		if errors.Is(err, history.ErrStorage) {
			ctx.JSON(http.StatusInternalServerError, errorResponse(errors.New("could not save answer history")))
			return
		}
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, eval)
}

////////////////////////////////////////////////////////////////////////
// POST /feedback/tips
////////////////////////////////////////////////////////////////////////

type answerTipsRequest struct {
	Answer string `json:"answer"`
}

// answerTips returns the coaching tips for an answer without scoring or recording it.
func (server *Server) answerTips(ctx *gin.Context) {
	var req answerTipsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tips": server.evaluator.Tips(req.Answer)})
}

////////////////////////////////////////////////////////////////////////
// GET /history
////////////////////////////////////////////////////////////////////////

// listHistory returns every recorded answer.
func (server *Server) listHistory(ctx *gin.Context) {
	records, err := server.evaluator.History(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(errors.New("could not read answer history")))
		return
	}
	if records == nil {
		records = []history.Record{}
	}

	ctx.JSON(http.StatusOK, records)
}
