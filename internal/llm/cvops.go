package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yassjustice/resumeBuilder-sub001/internal/normalize"
	"github.com/yassjustice/resumeBuilder-sub001/internal/prompts"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// maxTailorBullets caps the responsibilities the tailoring pass keeps per
// experience entry, matching the renderer's page-budget cap.
const maxTailorBullets = 4

// ExtractCV turns raw CV text (from an upload or paste) into a normalized
// CV document.
func ExtractCV(ctx context.Context, client Client, text string) (*types.CV, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text to extract from")
	}

	template, err := prompts.Get("cv.json", "extract_cv")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	out, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("extraction returned invalid JSON: %w", err)
	}
	return normalize.CV(raw), nil
}

// TailorCV rewrites a CV's summary and experience bullets to target a job
// description. Per-section generations run concurrently; a section whose
// generation fails keeps its original content rather than failing the
// whole operation.
func TailorCV(ctx context.Context, client Client, cv *types.CV, jobDescription string) (*types.CV, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is required")
	}

	tailored := *cv
	tailored.Experience = append([]types.ExperienceItem(nil), cv.Experience...)
	lang := languageName(cv.Language)

	g, gCtx := errgroup.WithContext(ctx)

	if cv.Summary != "" {
		g.Go(func() error {
			template, err := prompts.Get("cv.json", "tailor_summary")
			if err != nil {
				return err
			}
			prompt := prompts.Format(template, map[string]string{
				"Summary":        cv.Summary,
				"JobDescription": jobDescription,
				"Language":       lang,
			})
			out, err := client.GenerateContent(gCtx, prompt, TierAdvanced)
			if err != nil {
				// Keep the original summary on failure.
				return nil
			}
			tailored.Summary = strings.TrimSpace(out)
			return nil
		})
	}

	for i := range cv.Experience {
		i := i
		if len(cv.Experience[i].Responsibilities) == 0 {
			continue
		}
		g.Go(func() error {
			entry, err := json.Marshal(cv.Experience[i])
			if err != nil {
				return nil
			}
			template, err := prompts.Get("cv.json", "tailor_experience")
			if err != nil {
				return err
			}
			prompt := prompts.Format(template, map[string]string{
				"Experience":     string(entry),
				"JobDescription": jobDescription,
				"MaxBullets":     strconv.Itoa(maxTailorBullets),
				"Language":       lang,
			})
			out, err := client.GenerateJSON(gCtx, prompt, TierAdvanced)
			if err != nil {
				return nil
			}
			var bullets []string
			if err := json.Unmarshal([]byte(out), &bullets); err != nil || len(bullets) == 0 {
				return nil
			}
			if len(bullets) > maxTailorBullets {
				bullets = bullets[:maxTailorBullets]
			}
			tailored.Experience[i].Responsibilities = bullets
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tailoring failed: %w", err)
	}
	return &tailored, nil
}

// CoverLetter generates a cover letter for the CV and job description.
func CoverLetter(ctx context.Context, client Client, cv *types.CV, jobDescription string) (string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", fmt.Errorf("job description is required")
	}

	cvJSON, err := json.Marshal(cv)
	if err != nil {
		return "", fmt.Errorf("failed to serialize CV: %w", err)
	}

	template, err := prompts.Get("cv.json", "cover_letter")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"CV":             string(cvJSON),
		"JobDescription": jobDescription,
		"Language":       languageName(cv.Language),
	})

	out, err := client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func languageName(lang types.Language) string {
	if lang == types.LangFrench {
		return "French"
	}
	return "English"
}
