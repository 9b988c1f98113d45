package controller

import (
	"encoding/json"
	"errors"
	"io"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService    *service.ProblemService
	SubmissionService *service.SubmissionService
}

func NewProblemController(problemService *service.ProblemService, submissionService *service.SubmissionService) *ProblemController {
	return &ProblemController{
		ProblemService:    problemService,
		SubmissionService: submissionService,
	}
}

type GenerateProblemRequest struct {
	Difficulty  string `json:"difficulty" example:"medium"`
	ProblemType string `json:"problemType" example:"mixed"`
}

type GenerateProblemResponse struct {
	Success     bool              `json:"success"`
	Problem     model.Problem     `json:"problem"`
	SessionID   string            `json:"session_id"`
	Difficulty  model.Difficulty  `json:"difficulty"`
	ProblemType model.ProblemType `json:"problemType"`
	Source      string            `json:"source"`
}

type SubmitAnswerRequest struct {
	SessionID  string          `json:"session_id"`
	UserAnswer json.RawMessage `json:"user_answer" swaggertype:"number"`
}

type SubmitAnswerResponse struct {
	Success         bool    `json:"success"`
	IsCorrect       bool    `json:"is_correct"`
	Feedback        string  `json:"feedback"`
	CorrectAnswer   float64 `json:"correct_answer"`
	Hint            string  `json:"hint,omitempty"`
	StepExplanation string  `json:"step_explanation,omitempty"`
}

// 请求体可以为空，缺省 medium/mixed
func bindGenerateRequest(ctx *gin.Context) (model.Difficulty, model.ProblemType, error) {
	var req GenerateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", "", err
	}
	return model.ParseDifficulty(req.Difficulty), model.ParseProblemType(req.ProblemType), nil
}

func newGenerateResponse(session *model.ProblemSession) GenerateProblemResponse {
	return GenerateProblemResponse{
		Success:     true,
		Problem:     session.Problem(),
		SessionID:   session.ID,
		Difficulty:  session.Difficulty,
		ProblemType: session.ProblemType,
		Source:      string(session.Source),
	}
}

// @Summary 生成练习题
// @Description 根据难度和题型调用 AI 生成应用题并保存会话
// @Tags 练习
// @Accept json
// @Produce json
// @Param request body GenerateProblemRequest false "难度与题型"
// @Success 200 {object} GenerateProblemResponse
// @Failure 400 {object} util.ResultResponse
// @Failure 500 {object} util.ResultResponse
// @Router /api/math-problem [post]
func (c *ProblemController) Generate(ctx *gin.Context) {
	difficulty, problemType, err := bindGenerateRequest(ctx)
	if err != nil {
		util.Fail(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.ProblemService.Generate(ctx.Request.Context(), difficulty, problemType)
	if err != nil {
		util.FailInternal(ctx, err, "Failed to generate problem")
		return
	}

	ctx.JSON(http.StatusOK, newGenerateResponse(session))
}

// @Summary 生成内置练习题
// @Description 不调用 AI，从内置题库取题并保存会话
// @Tags 练习
// @Accept json
// @Produce json
// @Param request body GenerateProblemRequest false "难度与题型"
// @Success 200 {object} GenerateProblemResponse
// @Failure 400 {object} util.ResultResponse
// @Failure 500 {object} util.ResultResponse
// @Router /api/math-problem/simple [post]
func (c *ProblemController) GenerateSimple(ctx *gin.Context) {
	difficulty, problemType, err := bindGenerateRequest(ctx)
	if err != nil {
		util.Fail(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.ProblemService.GenerateFallback(ctx.Request.Context(), difficulty, problemType)
	if err != nil {
		util.FailInternal(ctx, err, "Failed to generate problem")
		return
	}

	ctx.JSON(http.StatusOK, newGenerateResponse(session))
}

// @Summary 提交答案
// @Description 判分并生成 AI 反馈，user_answer 可为数字或数字字符串
// @Tags 练习
// @Accept json
// @Produce json
// @Param request body SubmitAnswerRequest true "会话ID与答案"
// @Success 200 {object} SubmitAnswerResponse
// @Failure 400 {object} util.ResultResponse
// @Failure 404 {object} util.ResultResponse
// @Failure 500 {object} util.ResultResponse
// @Router /api/math-problem/submit [post]
func (c *ProblemController) Submit(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.Fail(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SessionID == "" || len(req.UserAnswer) == 0 || string(req.UserAnswer) == "null" {
		util.Fail(ctx, http.StatusBadRequest, "Session ID and user answer are required")
		return
	}

	answer, err := service.ParseAnswer(req.UserAnswer)
	if err != nil {
		util.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.SubmissionService.Submit(ctx.Request.Context(), req.SessionID, answer)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.Fail(ctx, http.StatusNotFound, "Problem session not found")
			return
		}
		util.FailInternal(ctx, err, "Failed to process submission")
		return
	}

	ctx.JSON(http.StatusOK, SubmitAnswerResponse{
		Success:         true,
		IsCorrect:       result.Submission.IsCorrect,
		Feedback:        result.Submission.FeedbackText,
		CorrectAnswer:   result.Session.CorrectAnswer,
		Hint:            result.Session.Hint,
		StepExplanation: result.Session.StepExplanation,
	})
}
