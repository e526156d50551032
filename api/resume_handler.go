// api/resume_handler.go
package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/resumecoach/extract"
)

// errExtraction is the body returned when no text could be read from the upload.
var errExtraction = errors.New("Could not extract text from PDF")

// Represents the multipart form for resume scoring.
type predictResumeRequest struct {
	Role string                `form:"role" binding:"required"`
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// predictResume scores an uploaded resume against the requested role.
func (server *Server) predictResume(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, server.config.MaxUploadBytes+1<<20)

	var req predictResumeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			ctx.JSON(http.StatusRequestEntityTooLarge, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.File.Size > server.config.MaxUploadBytes {
		err := fmt.Errorf("file is larger than %d bytes", server.config.MaxUploadBytes)
		ctx.JSON(http.StatusRequestEntityTooLarge, errorResponse(err))
		return
	}

	data, err := readUpload(req.File)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.scorer.Score(ctx, req.Role, req.File.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrExtractionFailed) {
			_ = ctx.Error(err)
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(errExtraction))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
