package service

import (
	"fmt"
	"math_practice_backend/internal/model"
	"strconv"
	"strings"
)

var difficultyGuides = map[model.Difficulty]string{
	model.DifficultyEasy:   "Easy: single-step problems with small whole numbers (Primary 1-2 level, numbers up to 100)",
	model.DifficultyMedium: "Medium: one or two steps with numbers up to 1,000 (Primary 3-4 level)",
	model.DifficultyHard:   "Hard: multi-step problems with larger whole numbers, decimals or fractions (Primary 5-6 level)",
}

var problemTypeGuides = map[model.ProblemType]string{
	model.ProblemTypeAddition:       "addition",
	model.ProblemTypeSubtraction:    "subtraction",
	model.ProblemTypeMultiplication: "multiplication",
	model.ProblemTypeDivision:       "division",
	model.ProblemTypeMixed:          "a mix of addition, subtraction, multiplication and division",
}

// BuildProblemPrompt 生成出题提示词，syllabus 为大纲文本
func BuildProblemPrompt(difficulty model.Difficulty, problemType model.ProblemType, syllabus string) string {
	var b strings.Builder

	b.WriteString("You are an experienced primary school mathematics teacher. Generate one math word problem for primary school students, aligned with the syllabus below.\n\n")

	b.WriteString("SYLLABUS CONTEXT:\n")
	b.WriteString(strings.TrimSpace(syllabus))
	b.WriteString("\n\n")

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Difficulty: %s\n", difficultyGuides[difficulty])
	fmt.Fprintf(&b, "- Operation: the problem must use %s\n", problemTypeGuides[problemType])
	b.WriteString("- The problem should be a word problem with a clear scenario relatable to children\n")
	b.WriteString("- The problem should have a single correct numerical answer\n")
	b.WriteString("- Provide a short hint that does not reveal the answer\n")
	b.WriteString("- Provide a step-by-step explanation, one step per line\n\n")

	b.WriteString(`Return your response in the following JSON format:
{
  "problem_text": "The actual word problem text here",
  "final_answer": 0,
  "hint": "A helpful hint",
  "step_explanation": "Step 1: ...\nStep 2: ...\nFinal Answer: ...",
  "syllabus_topic": "Syllabus strand and topic",
  "learning_objective": "What the student practises",
  "primary_level": "Primary 1-6"
}

Example:
{
  "problem_text": "Sarah has 24 stickers. She gives 8 stickers to her friend Emma and buys 12 more stickers at the store. How many stickers does Sarah have now?",
  "final_answer": 28,
  "hint": "Subtract the stickers she gives away, then add the ones she buys.",
  "step_explanation": "Step 1: 24 - 8 = 16\nStep 2: 16 + 12 = 28\nFinal Answer: Sarah has 28 stickers.",
  "syllabus_topic": "Number and Algebra - Addition and subtraction within 100",
  "learning_objective": "Solve two-step word problems involving addition and subtraction",
  "primary_level": "Primary 2"
}`)

	return b.String()
}

// BuildFeedbackPrompt 生成作答反馈提示词
func BuildFeedbackPrompt(session *model.ProblemSession, userAnswer float64, isCorrect bool) string {
	return fmt.Sprintf(`You are a helpful and encouraging math tutor for primary school students. Generate personalized feedback for a student's answer to a math word problem.

Problem: "%s"
Correct Answer: %s
Student's Answer: %s
Is Correct: %t

Requirements for feedback:
- Be encouraging and supportive regardless of whether the answer is correct
- If correct: Congratulate them and briefly explain why their answer is right
- If incorrect: Be gentle and helpful, explain the correct approach without giving away the answer
- Use age-appropriate language
- Keep it concise (2-3 sentences)
- Be positive and motivating

Return only the feedback text, no additional formatting or explanations.`,
		session.ProblemText,
		formatNumber(session.CorrectAnswer),
		formatNumber(userAnswer),
		isCorrect,
	)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
