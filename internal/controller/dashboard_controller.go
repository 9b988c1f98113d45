package controller

import (
	"errors"
	"io"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	ReportService    *service.ReportService
}

func NewDashboardController(dashboardService *service.DashboardService, reportService *service.ReportService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		ReportService:    reportService,
	}
}

type DashboardResponse struct {
	Success bool                 `json:"success"`
	Data    []model.HistoryItem  `json:"data"`
	Stats   model.DashboardStats `json:"stats"`
}

type StatsRequest struct {
	History []model.HistoryItem `json:"history"`
}

type StatsResponse struct {
	Success bool                 `json:"success"`
	Stats   model.DashboardStats `json:"stats"`
}

// @Summary 获取仪表盘数据
// @Description 返回全部作答历史（按时间升序）及统计
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} util.ResultResponse
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.DashboardService.Overview(ctx.Request.Context())
	if err != nil {
		util.FailInternal(ctx, err, "Failed to fetch dashboard data")
		return
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		Success: true,
		Data:    dashboard.History,
		Stats:   dashboard.Stats,
	})
}

// @Summary 统计本地历史
// @Description 对前端本地缓存的作答历史做同样的统计
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Param request body StatsRequest true "作答历史，按时间升序"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} util.ResultResponse
// @Router /api/dashboard/stats [post]
func (c *DashboardController) CalculateStats(ctx *gin.Context) {
	var req StatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.Fail(ctx, http.StatusBadRequest, "Invalid history payload")
		return
	}

	ctx.JSON(http.StatusOK, StatsResponse{
		Success: true,
		Stats:   c.DashboardService.Stats(req.History),
	})
}

// @Summary 下载练习报告
// @Description 以 PDF 形式导出统计与最近作答
// @Tags 仪表盘
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {object} util.ResultResponse
// @Router /api/dashboard/report [get]
func (c *DashboardController) DownloadReport(ctx *gin.Context) {
	dashboard, err := c.DashboardService.Overview(ctx.Request.Context())
	if err != nil {
		util.FailInternal(ctx, err, "Failed to fetch dashboard data")
		return
	}

	report, err := c.ReportService.Render(dashboard.Stats)
	if err != nil {
		util.FailInternal(ctx, err, "Failed to render report")
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="math-practice-report.pdf"`)
	ctx.Data(http.StatusOK, util.MimePDF, report)
}
