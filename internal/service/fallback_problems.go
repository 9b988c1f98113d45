package service

import "math_practice_backend/internal/model"

// 不依赖 AI 的内置题库
var fallbackProblems = map[model.Difficulty]map[model.ProblemType]model.Problem{
	model.DifficultyEasy: {
		model.ProblemTypeAddition: {
			ProblemText:       "Sarah has 5 apples. She buys 3 more apples. How many apples does she have in total?",
			FinalAnswer:       8,
			Hint:              "Start with Sarah's original apples and add the new ones.",
			StepExplanation:   "Step 1: Sarah starts with 5 apples\nStep 2: She buys 3 more apples\nStep 3: 5 + 3 = 8 apples\nFinal Answer: Sarah has 8 apples in total.",
			SyllabusTopic:     "Number and Algebra - Addition within 20",
			LearningObjective: "Students should be able to solve simple addition word problems",
			PrimaryLevel:      "Primary 1",
		},
		model.ProblemTypeSubtraction: {
			ProblemText:       "Tom has 12 stickers. He gives away 4 stickers to his friend. How many stickers does Tom have left?",
			FinalAnswer:       8,
			Hint:              "Start with Tom's original stickers and subtract what he gives away.",
			StepExplanation:   "Step 1: Tom starts with 12 stickers\nStep 2: He gives away 4 stickers\nStep 3: 12 - 4 = 8 stickers\nFinal Answer: Tom has 8 stickers left.",
			SyllabusTopic:     "Number and Algebra - Subtraction within 20",
			LearningObjective: "Students should be able to solve simple subtraction word problems",
			PrimaryLevel:      "Primary 1",
		},
	},
	model.DifficultyMedium: {
		model.ProblemTypeAddition: {
			ProblemText:       "A bakery sold 45 cakes in the morning and 38 cakes in the afternoon. How many cakes did they sell in total?",
			FinalAnswer:       83,
			Hint:              "Add the cakes sold in the morning and afternoon.",
			StepExplanation:   "Step 1: Morning sales: 45 cakes\nStep 2: Afternoon sales: 38 cakes\nStep 3: 45 + 38 = 83 cakes\nFinal Answer: The bakery sold 83 cakes in total.",
			SyllabusTopic:     "Number and Algebra - Addition within 100",
			LearningObjective: "Students should be able to solve addition problems with regrouping",
			PrimaryLevel:      "Primary 2",
		},
		model.ProblemTypeSubtraction: {
			ProblemText:       "A library has 156 books. They lent out 67 books to students. How many books are left in the library?",
			FinalAnswer:       89,
			Hint:              "Subtract the lent books from the total books.",
			StepExplanation:   "Step 1: Total books: 156\nStep 2: Books lent out: 67\nStep 3: 156 - 67 = 89 books\nFinal Answer: There are 89 books left in the library.",
			SyllabusTopic:     "Number and Algebra - Subtraction within 200",
			LearningObjective: "Students should be able to solve subtraction problems with regrouping",
			PrimaryLevel:      "Primary 3",
		},
		model.ProblemTypeMultiplication: {
			ProblemText:       "A box holds 6 rows of eggs with 8 eggs in each row. How many eggs are in the box?",
			FinalAnswer:       48,
			Hint:              "Equal rows mean you can multiply.",
			StepExplanation:   "Step 1: There are 6 rows\nStep 2: Each row has 8 eggs\nStep 3: 6 x 8 = 48 eggs\nFinal Answer: There are 48 eggs in the box.",
			SyllabusTopic:     "Number and Algebra - Multiplication tables",
			LearningObjective: "Students should be able to solve multiplication word problems using times tables",
			PrimaryLevel:      "Primary 3",
		},
		model.ProblemTypeDivision: {
			ProblemText:       "A teacher shares 72 pencils equally among 9 groups. How many pencils does each group get?",
			FinalAnswer:       8,
			Hint:              "Sharing equally means dividing.",
			StepExplanation:   "Step 1: There are 72 pencils\nStep 2: They are shared among 9 groups\nStep 3: 72 / 9 = 8 pencils\nFinal Answer: Each group gets 8 pencils.",
			SyllabusTopic:     "Number and Algebra - Division as equal sharing",
			LearningObjective: "Students should be able to solve division word problems without remainder",
			PrimaryLevel:      "Primary 3",
		},
	},
	model.DifficultyHard: {
		model.ProblemTypeMixed: {
			ProblemText:       "Emma has 250 marbles. She gives 45 marbles to her brother and buys 78 more marbles. Then she loses 23 marbles. How many marbles does Emma have now?",
			FinalAnswer:       260,
			Hint:              "Start with Emma's original marbles, subtract what she gives away, add what she buys, then subtract what she loses.",
			StepExplanation:   "Step 1: Emma starts with 250 marbles\nStep 2: She gives away 45 marbles: 250 - 45 = 205 marbles\nStep 3: She buys 78 more marbles: 205 + 78 = 283 marbles\nStep 4: She loses 23 marbles: 283 - 23 = 260 marbles\nFinal Answer: Emma has 260 marbles now.",
			SyllabusTopic:     "Number and Algebra - Multi-step operations with whole numbers",
			LearningObjective: "Students should be able to solve complex multi-step word problems",
			PrimaryLevel:      "Primary 5",
		},
	},
}

// FallbackProblem 按难度和题型取内置题目，缺失时依次退回 addition、mixed
func FallbackProblem(difficulty model.Difficulty, problemType model.ProblemType) model.Problem {
	byType, ok := fallbackProblems[difficulty]
	if !ok {
		byType = fallbackProblems[model.DifficultyMedium]
	}
	if p, ok := byType[problemType]; ok {
		return p
	}
	if p, ok := byType[model.ProblemTypeAddition]; ok {
		return p
	}
	if p, ok := byType[model.ProblemTypeMixed]; ok {
		return p
	}
	return fallbackProblems[model.DifficultyMedium][model.ProblemTypeAddition]
}
