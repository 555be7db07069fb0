package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".astroprofiles"

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.BirthProfile, error)
	GetProfile(ctx context.Context, name string) (domain.BirthProfile, error)
	GetChart(ctx context.Context, name string) (domain.BirthChart, error)
}

type iniRegistry struct {
	cfg  *ini.File
	base string
}

// DefaultPath returns $HOME/.astroprofiles.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// NewRegistry loads an INI file with one section per person:
//
//	[jane]
//	birth_date = 1990-07-15
//	birth_time = 14:30
//	latitude   = 51.5
//	longitude  = -0.12
//	timezone   = Europe/London
//	city       = London
//	country    = UK
//	chart_file = jane.json
//
// chart_file is resolved relative to the INI file and holds the planets,
// houses and aspects in the API's JSON chart format.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg, base: filepath.Dir(path)}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.BirthProfile, error) {
	var profiles []domain.BirthProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.BirthProfile, error) {
	section, err := r.section(name)
	if err != nil {
		return domain.BirthProfile{}, err
	}
	return profileFromSection(section), nil
}

func (r *iniRegistry) GetChart(_ context.Context, name string) (domain.BirthChart, error) {
	section, err := r.section(name)
	if err != nil {
		return domain.BirthChart{}, err
	}
	profile := profileFromSection(section)

	birthDate, err := time.Parse(domain.DateLayout, profile.BirthDate)
	if err != nil {
		return domain.BirthChart{}, fmt.Errorf("profile %s: invalid birth_date %q: %w", name, profile.BirthDate, err)
	}

	chart := domain.BirthChart{Name: name, BirthDate: birthDate}

	if profile.BirthTime != "" {
		chart.BirthTime, err = domain.ParseTimeOfDay(profile.BirthTime)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("profile %s: %w", name, err)
		}
	}

	if section.HasKey("latitude") || section.HasKey("city") {
		chart.Location = &domain.Location{
			Latitude:  floatValue(section, "latitude"),
			Longitude: floatValue(section, "longitude"),
			Timezone:  value(section, "timezone"),
			City:      profile.City,
			Country:   profile.Country,
		}
	}

	if profile.ChartFile != "" {
		data, err := r.loadChartData(profile.ChartFile)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("profile %s: %w", name, err)
		}
		adapters.ApplyChartData(&chart, data)
	}

	return chart, nil
}

func (r *iniRegistry) section(name string) (*ini.Section, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return section, nil
}

func (r *iniRegistry) loadChartData(file string) (api.ChartData, error) {
	if !filepath.IsAbs(file) {
		file = filepath.Join(r.base, file)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return api.ChartData{}, fmt.Errorf("failed to read chart file: %w", err)
	}
	var data api.ChartData
	if err := json.Unmarshal(raw, &data); err != nil {
		return api.ChartData{}, fmt.Errorf("failed to parse chart file %s: %w", file, err)
	}
	return data, nil
}

func profileFromSection(section *ini.Section) domain.BirthProfile {
	return domain.BirthProfile{
		Name:      section.Name(),
		BirthDate: value(section, "birth_date"),
		BirthTime: value(section, "birth_time"),
		City:      value(section, "city"),
		Country:   value(section, "country"),
		ChartFile: value(section, "chart_file"),
	}
}

// value reads a key without creating it; section.Key adds missing keys to
// the loaded file.
func value(section *ini.Section, key string) string {
	if !section.HasKey(key) {
		return ""
	}
	return section.Key(key).String()
}

func floatValue(section *ini.Section, key string) float64 {
	if !section.HasKey(key) {
		return 0
	}
	return section.Key(key).MustFloat64(0)
}
