package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

// uploadField is the multipart field carrying staged documents.
const uploadField = "files"

// StagingHandler manages the session's staged tasks.
type StagingHandler struct {
	facade         StagingFacade
	maxUploadBytes int64
}

// NewStagingHandler constructs StagingHandler.
func NewStagingHandler(facade StagingFacade, maxUploadBytes int64) *StagingHandler {
	return &StagingHandler{facade: facade, maxUploadBytes: maxUploadBytes}
}

// List handles GET /api/staging.
func (h *StagingHandler) List(c *gin.Context) {
	tasks, err := h.facade.StagedTasks(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskDTOs(tasks))
}

// AddWords handles POST /api/staging/words.
func (h *StagingHandler) AddWords(c *gin.Context) {
	var req dto.WordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	task, err := h.facade.StageWordCount(c.Request.Context(), CurrentSessionID(c), req.WordCount.String())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskDTO(*task))
}

// AddFiles handles POST /api/staging/files.
func (h *StagingHandler) AddFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload")
		return
	}
	headers := form.File[uploadField]
	if len(headers) == 0 {
		respondError(c, http.StatusBadRequest, "No files provided")
		return
	}

	uploads := make([]model.Upload, 0, len(headers))
	for _, fh := range headers {
		up, err := h.readUpload(fh)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid upload")
			return
		}
		uploads = append(uploads, up)
	}

	result, err := h.facade.StageFiles(c.Request.Context(), CurrentSessionID(c), uploads)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.StageFilesResponse{
		Tasks:    toTaskDTOs(result.Tasks),
		Rejected: make([]dto.Rejection, 0, len(result.Rejected)),
		Warnings: append([]string{}, result.Warnings...),
	}
	for _, r := range result.Rejected {
		resp.Rejected = append(resp.Rejected, dto.Rejection{Name: r.Name, Error: r.Message})
	}
	c.JSON(http.StatusOK, resp)
}

// readUpload loads a part into memory; oversized parts keep only their metadata so the
// use case can reject them by size.
func (h *StagingHandler) readUpload(fh *multipart.FileHeader) (model.Upload, error) {
	up := model.Upload{Name: fh.Filename, Size: fh.Size}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return up, nil
	}

	f, err := fh.Open()
	if err != nil {
		return up, err
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxUploadBytes > 0 {
		r = io.LimitReader(f, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return up, err
	}
	up.Data = data
	up.Size = int64(len(data))
	return up, nil
}

// Remove handles DELETE /api/staging/:id.
func (h *StagingHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	ctx := c.Request.Context()
	sessionID := CurrentSessionID(c)
	if err := h.facade.UnstageTask(ctx, sessionID, id); err != nil {
		writeError(c, err)
		return
	}
	h.List(c)
}

// Clear handles DELETE /api/staging.
func (h *StagingHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearStaging(c.Request.Context(), CurrentSessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, []dto.Task{})
}
