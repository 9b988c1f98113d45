package controller

import (
	"errors"
	"io"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxSyllabusUploadSize = 32 << 20

type SyllabusController struct {
	SyllabusService *service.SyllabusService
}

func NewSyllabusController(syllabusService *service.SyllabusService) *SyllabusController {
	return &SyllabusController{SyllabusService: syllabusService}
}

// @Summary 大纲缓存状态
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SyllabusStatus}
// @Failure 401 {object} util.Response
// @Router /api/admin/syllabus [get]
func (c *SyllabusController) Status(ctx *gin.Context) {
	util.Success(ctx, c.SyllabusService.Status())
}

// @Summary 重新提取大纲
// @Description 立即从 PDF 重新提取文本并覆盖缓存
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SyllabusStatus}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/admin/syllabus/refresh [post]
func (c *SyllabusController) Refresh(ctx *gin.Context) {
	status, err := c.SyllabusService.Extract(ctx.Request.Context())
	if err != nil {
		c.handleExtractError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// @Summary 上传大纲 PDF
// @Description 替换大纲 PDF 并立即重新提取
// @Tags 管理
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "大纲 PDF"
// @Success 200 {object} util.Response{data=service.SyllabusStatus}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/admin/syllabus/source [put]
func (c *SyllabusController) UploadSource(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxSyllabusUploadSize {
		util.BadRequest(ctx, "file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSyllabusUploadSize))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	status, err := c.SyllabusService.UploadSource(ctx.Request.Context(), data)
	if err != nil {
		if errors.Is(err, util.ErrInvalidUpload) {
			util.BadRequest(ctx, err.Error())
			return
		}
		c.handleExtractError(ctx, err)
		return
	}

	logger.Log.Info("Syllabus source replaced",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size))
	util.Success(ctx, status)
}

func (c *SyllabusController) handleExtractError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrSyllabusSourceMissing) {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}
	logger.Log.Error("Syllabus extraction failed", zap.Error(err))
	util.Error(ctx, http.StatusInternalServerError, err.Error())
}
