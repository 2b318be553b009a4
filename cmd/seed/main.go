// Package main provides data seeding for Kolekta.
//
// Seeding is idempotent: residents are upserted by username, schedules
// and education are only inserted into empty tables. A custom fixture
// file can be supplied with -fixture; otherwise the embedded default is
// used.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"kolekta.io/kolekta/ent"
	entresident "kolekta.io/kolekta/ent/resident"
	entschedule "kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/internal/config"
	"kolekta.io/kolekta/internal/infrastructure"
	"kolekta.io/kolekta/internal/pkg/logger"
)

//go:embed seed.yaml
var defaultFixtureYAML []byte

type fixture struct {
	Residents []residentFixture `yaml:"residents"`
	Schedules []scheduleFixture `yaml:"schedules"`
	Education []contentFixture  `yaml:"education"`
}

type residentFixture struct {
	Username    string `yaml:"username"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	Role        string `yaml:"role"`
	Purok       string `yaml:"purok"`
	Phone       string `yaml:"phone"`
}

type scheduleFixture struct {
	Purok     string `yaml:"purok"`
	Plan      string `yaml:"plan"`
	Date      string `yaml:"date"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	WasteType string `yaml:"waste_type"`
}

type contentFixture struct {
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	Body      string `yaml:"body"`
	Published bool   `yaml:"published"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fixturePath := flag.String("fixture", "", "path to a YAML fixture file (default: embedded)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	fx, err := loadFixture(*fixturePath)
	if err != nil {
		return err
	}
	if err := fx.validate(); err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Schema and River migrations are expected to run before seeding.
	if err := seedResidents(ctx, client, fx.Residents); err != nil {
		return fmt.Errorf("seed residents: %w", err)
	}
	if err := seedSchedules(ctx, client, fx.Schedules); err != nil {
		return fmt.Errorf("seed schedules: %w", err)
	}
	if err := seedEducation(ctx, client, fx.Education); err != nil {
		return fmt.Errorf("seed education: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func loadFixture(path string) (*fixture, error) {
	data := defaultFixtureYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// validate rejects fixtures that would fail midway through seeding,
// so a bad file never leaves a half-seeded database.
func (f *fixture) validate() error {
	seen := make(map[string]struct{}, len(f.Residents))
	for i, r := range f.Residents {
		if r.Username == "" {
			return fmt.Errorf("residents[%d]: username is required", i)
		}
		if _, dup := seen[r.Username]; dup {
			return fmt.Errorf("residents[%d]: duplicate username %q", i, r.Username)
		}
		seen[r.Username] = struct{}{}
		switch r.Role {
		case "official", "collector", "resident":
		default:
			return fmt.Errorf("residents[%d]: unknown role %q", i, r.Role)
		}
	}
	for i, s := range f.Schedules {
		if s.Plan != "A" && s.Plan != "B" {
			return fmt.Errorf("schedules[%d]: plan must be A or B, got %q", i, s.Plan)
		}
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return fmt.Errorf("schedules[%d]: bad date %q", i, s.Date)
		}
		for _, hhmm := range []string{s.StartTime, s.EndTime} {
			if _, err := time.Parse("15:04", hhmm); err != nil {
				return fmt.Errorf("schedules[%d]: bad time %q", i, hhmm)
			}
		}
		switch s.WasteType {
		case "Recyclable", "Non-Recyclable", "Toxic", "General":
		default:
			return fmt.Errorf("schedules[%d]: unknown waste type %q", i, s.WasteType)
		}
	}
	for i, c := range f.Education {
		if c.Title == "" || c.Body == "" {
			return fmt.Errorf("education[%d]: title and body are required", i)
		}
	}
	return nil
}

// seedResidents upserts accounts by username. Existing rows are left
// untouched so locally edited profiles survive re-seeding.
func seedResidents(ctx context.Context, client *ent.Client, residents []residentFixture) error {
	for _, r := range residents {
		create := client.Resident.Create().
			SetID(uuid.NewString()).
			SetUsername(r.Username).
			SetDisplayName(r.DisplayName).
			SetRole(entresident.Role(r.Role)).
			SetPurok(r.Purok).
			SetPhone(r.Phone)
		// Email stays NULL when absent; the unique index tolerates
		// NULLs but not repeated empty strings.
		if r.Email != "" {
			create.SetEmail(r.Email)
		}
		err := create.
			OnConflictColumns(entresident.FieldUsername).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert resident %s: %w", r.Username, err)
		}
	}
	logger.Info("Residents seeded", zap.Int("count", len(residents)))
	return nil
}

func seedSchedules(ctx context.Context, client *ent.Client, schedules []scheduleFixture) error {
	existing, err := client.Schedule.Query().Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		logger.Info("Schedules already present, skipping", zap.Int("existing", existing))
		return nil
	}

	bulk := make([]*ent.ScheduleCreate, 0, len(schedules))
	for _, s := range schedules {
		// Dates are validated before seeding starts.
		day, _ := time.Parse("2006-01-02", s.Date)
		bulk = append(bulk, client.Schedule.Create().
			SetID(uuid.NewString()).
			SetPurok(s.Purok).
			SetPlan(entschedule.Plan(s.Plan)).
			SetDay(day.Weekday().String()).
			SetDate(s.Date).
			SetStartTime(s.StartTime).
			SetEndTime(s.EndTime).
			SetWasteType(entschedule.WasteType(s.WasteType)))
	}
	if _, err := client.Schedule.CreateBulk(bulk...).Save(ctx); err != nil {
		return err
	}
	logger.Info("Schedules seeded", zap.Int("count", len(schedules)))
	return nil
}

func seedEducation(ctx context.Context, client *ent.Client, contents []contentFixture) error {
	existing, err := client.EducationalContent.Query().Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		logger.Info("Educational content already present, skipping", zap.Int("existing", existing))
		return nil
	}

	bulk := make([]*ent.EducationalContentCreate, 0, len(contents))
	for _, c := range contents {
		bulk = append(bulk, client.EducationalContent.Create().
			SetID(uuid.NewString()).
			SetTitle(c.Title).
			SetCategory(c.Category).
			SetBody(c.Body).
			SetPublished(c.Published))
	}
	if _, err := client.EducationalContent.CreateBulk(bulk...).Save(ctx); err != nil {
		return err
	}
	logger.Info("Educational content seeded", zap.Int("count", len(contents)))
	return nil
}
