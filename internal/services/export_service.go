package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

// Datasets - наборы, доступные для CSV выгрузки
var Datasets = []string{"profiles", "opportunities", "needs", "matches", "feedback", "subscriptions"}

type ExportService interface {
	// Export пишет CSV в w и возвращает имя файла <dataset>_<YYYY-MM-DD>.csv
	Export(ctx context.Context, db *gorm.DB, dataset string, w io.Writer) (string, error)
	FileName(dataset string) string
}

type ExportServiceImpl struct {
	profileRepo      repositories.ProfileRepository
	opportunityRepo  repositories.OpportunityRepository
	needRepo         repositories.NeedRepository
	matchRepo        repositories.MatchRepository
	feedbackRepo     repositories.FeedbackRepository
	subscriptionRepo repositories.SubscriptionRepository
	now              func() time.Time
}

func NewExportService(
	profileRepo repositories.ProfileRepository,
	opportunityRepo repositories.OpportunityRepository,
	needRepo repositories.NeedRepository,
	matchRepo repositories.MatchRepository,
	feedbackRepo repositories.FeedbackRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) ExportService {
	return &ExportServiceImpl{
		profileRepo:      profileRepo,
		opportunityRepo:  opportunityRepo,
		needRepo:         needRepo,
		matchRepo:        matchRepo,
		feedbackRepo:     feedbackRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

func (s *ExportServiceImpl) FileName(dataset string) string {
	return fmt.Sprintf("%s_%s.csv", dataset, s.now().UTC().Format("2006-01-02"))
}

func (s *ExportServiceImpl) Export(ctx context.Context, db *gorm.DB, dataset string, w io.Writer) (string, error) {
	rows, err := s.rows(db, dataset)
	if err != nil {
		return "", err
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("write csv: %w", err))
	}
	return s.FileName(dataset), nil
}

// rows - заголовок и по строке на запись
func (s *ExportServiceImpl) rows(db *gorm.DB, dataset string) ([][]string, error) {
	switch dataset {
	case "profiles":
		items, err := s.profileRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "email", "full_name", "company_name", "company_stage", "industry", "location", "role", "github_url", "karmagap_url", "created_at"}}
		for _, p := range items {
			out = append(out, []string{p.ID, p.Email, p.FullName, p.CompanyName, string(p.CompanyStage), p.Industry, p.Location, string(p.Role), p.GithubURL, p.KarmaGapURL, csvTime(p.CreatedAt)})
		}
		return out, nil

	case "opportunities":
		items, err := s.opportunityRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "provider_id", "title", "description", "category", "type", "requirements", "benefits", "application_url", "deadline", "is_active", "created_at"}}
		for _, o := range items {
			deadline := ""
			if o.Deadline != nil {
				deadline = csvTime(*o.Deadline)
			}
			out = append(out, []string{o.ID, o.ProviderID, o.Title, o.Description, o.Category, o.Type, csvList(o.Requirements), csvList(o.Benefits), o.ApplicationURL, deadline, strconv.FormatBool(o.IsActive), csvTime(o.CreatedAt)})
		}
		return out, nil

	case "needs":
		items, err := s.needRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "user_id", "title", "description", "category", "urgency", "budget_range", "timeline", "skills_needed", "is_active", "created_at"}}
		for _, n := range items {
			out = append(out, []string{n.ID, n.UserID, n.Title, n.Description, string(n.Category), string(n.Urgency), n.BudgetRange, n.Timeline, csvList(n.SkillsNeeded), strconv.FormatBool(n.IsActive), csvTime(n.CreatedAt)})
		}
		return out, nil

	case "matches":
		items, err := s.matchRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "need_id", "opportunity_id", "requester_id", "provider_id", "status", "created_at"}}
		for _, m := range items {
			out = append(out, []string{m.ID, m.NeedID, m.OpportunityID, m.RequesterID, m.ProviderID, string(m.Status), csvTime(m.CreatedAt)})
		}
		return out, nil

	case "feedback":
		items, err := s.feedbackRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "user_id", "type", "category", "message", "rating", "match_id", "created_at"}}
		for _, f := range items {
			rating, matchID := "", ""
			if f.Rating != nil {
				rating = strconv.Itoa(*f.Rating)
			}
			if f.MatchID != nil {
				matchID = *f.MatchID
			}
			out = append(out, []string{f.ID, f.UserID, string(f.Type), f.Category, f.Message, rating, matchID, csvTime(f.CreatedAt)})
		}
		return out, nil

	case "subscriptions":
		items, err := s.subscriptionRepo.ListAll(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		out := [][]string{{"id", "email", "interests", "project_name", "project_stage", "is_active", "created_at"}}
		for _, sub := range items {
			out = append(out, []string{sub.ID, sub.Email, csvList(sub.Interests), sub.ProjectName, sub.ProjectStage, strconv.FormatBool(sub.IsActive), csvTime(sub.CreatedAt)})
		}
		return out, nil
	}

	valid := append([]string(nil), Datasets...)
	sort.Strings(valid)
	return nil, apperrors.NewBadRequestError("Unknown dataset: " + dataset).
		WithDetails(map[string][]string{"datasets": valid})
}

func csvTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// csvList - массивы в одной ячейке через "; "
func csvList(items models.StringList) string {
	return strings.Join(items, "; ")
}
