package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"rsc.io/pdf"
)

// TextExtractor 从文档字节中提取纯文本
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type PDFTextExtractor struct{}

func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText 逐页提取文本并压缩空白
func (e *PDFTextExtractor) ExtractText(data []byte) (text string, err error) {
	// rsc.io/pdf 遇到损坏的内容流会 panic
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var parts []string
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			parts = append(parts, t.S)
		}
		parts = append(parts, " ")
	}

	text = NormalizeWhitespace(strings.Join(parts, ""))
	if text == "" {
		return "", errors.New("pdf contains no extractable text")
	}
	return text, nil
}

// NormalizeWhitespace 连续空白合并为一个空格并去掉首尾空白
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
