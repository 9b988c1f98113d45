package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math_practice_backend/internal/config"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/logger"
	"math_practice_backend/pkg/monitoring"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// SyllabusCache 缓存文件格式
type SyllabusCache struct {
	Text        string    `json:"text"`
	ExtractedAt time.Time `json:"extractedAt"`
	Version     string    `json:"version"`
}

type SyllabusStatus struct {
	Cached      bool       `json:"cached"`
	Fresh       bool       `json:"fresh"`
	ExtractedAt *time.Time `json:"extracted_at,omitempty"`
	AgeSeconds  int64      `json:"age_seconds"`
	Version     string     `json:"version,omitempty"`
	Length      int        `json:"length"`
	Source      string     `json:"source"`
	SourceKey   string     `json:"source_key"`
	TTLSeconds  int64      `json:"ttl_seconds"`
}

// 大纲文本来源，用于指标标签
const (
	syllabusFromCache     = "cache"
	syllabusFromExtracted = "extracted"
	syllabusFromStale     = "stale"
	syllabusFromDefault   = "default"
)

type SyllabusService struct {
	Storage   *StorageService
	Extractor TextExtractor
	SourceKey string
	CachePath string
	Version   string
	Now       func() time.Time

	ttl atomic.Int64
}

func NewSyllabusService(cfg config.SyllabusConfig, storage *StorageService, extractor TextExtractor) *SyllabusService {
	key := cfg.PDFPath
	if cfg.Source != util.StorageLocal && cfg.ObjectKey != "" {
		key = cfg.ObjectKey
	}

	s := &SyllabusService{
		Storage:   storage,
		Extractor: extractor,
		SourceKey: key,
		CachePath: cfg.CachePath,
		Version:   cfg.Version,
		Now:       time.Now,
	}
	s.SetTTL(cfg.TTL)
	return s
}

func (s *SyllabusService) TTL() time.Duration {
	return time.Duration(s.ttl.Load())
}

// SetTTL 配置热更新时调用
func (s *SyllabusService) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	s.ttl.Store(int64(ttl))
}

func (s *SyllabusService) isFresh(cache *SyllabusCache) bool {
	return s.Now().Sub(cache.ExtractedAt) < s.TTL()
}

// Content 返回大纲文本，永不失败：新鲜缓存 > 重新提取 > 过期缓存 > 默认文本
func (s *SyllabusService) Content(ctx context.Context) string {
	cache, cacheErr := s.readCache()
	if cacheErr == nil && s.isFresh(cache) {
		monitoring.SyllabusLoads.WithLabelValues(syllabusFromCache).Inc()
		return cache.Text
	}

	fresh, err := s.refresh(ctx)
	if err == nil {
		monitoring.SyllabusLoads.WithLabelValues(syllabusFromExtracted).Inc()
		return fresh.Text
	}

	if cacheErr == nil {
		logger.Log.Warn("Syllabus extraction failed, using stale cache",
			zap.Error(err),
			zap.Time("extracted_at", cache.ExtractedAt))
		monitoring.SyllabusLoads.WithLabelValues(syllabusFromStale).Inc()
		return cache.Text
	}

	logger.Log.Warn("Syllabus extraction failed, using default content", zap.Error(err))
	monitoring.SyllabusLoads.WithLabelValues(syllabusFromDefault).Inc()
	return DefaultSyllabusContent
}

// Extract 强制重新提取并写入缓存，错误直接返回
func (s *SyllabusService) Extract(ctx context.Context) (SyllabusStatus, error) {
	if _, err := s.refresh(ctx); err != nil {
		return SyllabusStatus{}, err
	}
	return s.Status(), nil
}

// UploadSource 保存新的大纲 PDF 并立即重新提取
func (s *SyllabusService) UploadSource(ctx context.Context, data []byte) (SyllabusStatus, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return SyllabusStatus{}, fmt.Errorf("%w: not a PDF document", util.ErrInvalidUpload)
	}
	if err := s.Storage.Upload(ctx, s.SourceKey, data, util.MimePDF); err != nil {
		return SyllabusStatus{}, fmt.Errorf("store syllabus pdf: %w", err)
	}
	return s.Extract(ctx)
}

func (s *SyllabusService) Status() SyllabusStatus {
	status := SyllabusStatus{
		Source:     s.Storage.Provider.Name(),
		SourceKey:  s.SourceKey,
		TTLSeconds: int64(s.TTL() / time.Second),
	}

	cache, err := s.readCache()
	if err != nil {
		return status
	}

	extractedAt := cache.ExtractedAt
	status.Cached = true
	status.Fresh = s.isFresh(cache)
	status.ExtractedAt = &extractedAt
	status.AgeSeconds = int64(s.Now().Sub(cache.ExtractedAt) / time.Second)
	status.Version = cache.Version
	status.Length = len(cache.Text)
	return status
}

func (s *SyllabusService) refresh(ctx context.Context) (*SyllabusCache, error) {
	data, err := s.Storage.Download(ctx, s.SourceKey)
	if err != nil {
		return nil, fmt.Errorf("read syllabus source: %w", err)
	}

	text, err := s.Extractor.ExtractText(data)
	if err != nil {
		return nil, fmt.Errorf("extract syllabus text: %w", err)
	}

	cache := &SyllabusCache{
		Text:        NormalizeWhitespace(text),
		ExtractedAt: s.Now().UTC(),
		Version:     s.Version,
	}
	if err := s.writeCache(cache); err != nil {
		return nil, fmt.Errorf("write syllabus cache: %w", err)
	}

	logger.Log.Info("Syllabus content extracted",
		zap.Int("length", len(cache.Text)),
		zap.String("version", cache.Version))
	return cache, nil
}

func (s *SyllabusService) readCache() (*SyllabusCache, error) {
	raw, err := os.ReadFile(s.CachePath)
	if err != nil {
		return nil, err
	}

	var cache SyllabusCache
	if err := json.Unmarshal(raw, &cache); err != nil {
		return nil, fmt.Errorf("decode syllabus cache: %w", err)
	}
	if cache.Text == "" {
		return nil, errors.New("syllabus cache is empty")
	}
	return &cache, nil
}

func (s *SyllabusService) writeCache(cache *SyllabusCache) error {
	if err := os.MkdirAll(filepath.Dir(s.CachePath), 0755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.CachePath, raw, 0644)
}
