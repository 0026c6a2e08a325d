package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/profile"
	"github.com/Harshverma1208/skill-companion-project/internal/infrastructure/resume"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

var ErrResumeServiceUnavailable = errors.New("resume extraction service unavailable")

type ResumeUsecase interface {
	AnalyzeResume(ctx context.Context, userID uuid.UUID, resumeText string) (resume.Extraction, error)
}

type Resume struct {
	extractor resume.Extractor
	profiles  repository.ProfileRepository
	log       *log.Logger
}

func NewResumeUsecase(extractor resume.Extractor, profiles repository.ProfileRepository, logger *log.Logger) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	return &Resume{extractor: extractor, profiles: profiles, log: logger}
}

// AnalyzeResume sends the raw text to the external extraction service and
// merges the returned skills into the profile at beginner proficiency when
// they are new. Experience and education come back opaque and are only
// recorded in the history snapshot.
func (u *Resume) AnalyzeResume(ctx context.Context, userID uuid.UUID, resumeText string) (resume.Extraction, error) {
	if userID == uuid.Nil {
		return resume.Extraction{}, ErrUnauthorized
	}
	if strings.TrimSpace(resumeText) == "" {
		return resume.Extraction{}, ErrInvalidInput
	}
	if u.extractor == nil {
		return resume.Extraction{}, ErrResumeServiceUnavailable
	}

	ext, err := u.extractor.Extract(ctx, resumeText)
	if err != nil {
		u.log.Printf("analyzer=resume step=extract status=error user=%s err=%v", userID, err)
		return resume.Extraction{}, ErrResumeServiceUnavailable
	}

	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return resume.Extraction{}, ErrUserNotFound
		}
		return resume.Extraction{}, ErrInternal
	}

	held := p.SkillSet()
	for _, s := range ext.Skills {
		if s.Name == "" {
			continue
		}
		if _, ok := held[s.Name]; ok {
			continue
		}
		err := u.profiles.UpsertSkill(ctx, userID, profile.UserSkill{
			Name:        s.Name,
			Proficiency: profile.ProficiencyBeginner,
		})
		if err != nil {
			u.log.Printf("analyzer=resume step=merge status=error user=%s skill=%q err=%v", userID, s.Name, err)
		}
	}

	if err := u.profiles.AppendAnalysis(ctx, userID, profile.AnalysisResume, ext); err != nil {
		u.log.Printf("analyzer=resume step=history status=error user=%s err=%v", userID, err)
	}

	return ext, nil
}
