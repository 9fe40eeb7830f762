package extract

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Source is one news page to scan. BaseDate disambiguates year-less
// dates found on the page - the snapshot date for archived pages,
// today for the live one.
type Source struct {
	URL      string
	BaseDate time.Time
}

// DefaultSources returns the live Kaktus news page plus archived
// snapshots covering announcements that already rolled off the live
// page. Order matters only for which instance wins on date collisions.
func DefaultSources() []Source {
	now := time.Now()

	return []Source{
		{
			URL:      "https://www.mujkaktus.cz/novinky",
			BaseDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		},
		{
			URL:      "https://web.archive.org/web/20220524091831/https://www.mujkaktus.cz/novinky",
			BaseDate: time.Date(2022, 5, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			URL:      "https://web.archive.org/web/20200925041028/https://www.mujkaktus.cz/novinky",
			BaseDate: time.Date(2020, 9, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			URL:      "https://web.archive.org/web/20200815101625/https://www.mujkaktus.cz/novinky",
			BaseDate: time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

type sourcesFile struct {
	Sources []struct {
		URL      string `yaml:"url"`
		BaseDate string `yaml:"base_date"`
	} `yaml:"sources"`
}

// LoadSources reads a YAML source list replacing the built-in one.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read sources file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not unmarshal sources file: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s does not contain any sources", path)
	}

	sources := make([]Source, len(file.Sources))
	for i, entry := range file.Sources {
		baseDate, err := time.Parse("2006-01-02", entry.BaseDate)
		if err != nil {
			return nil, fmt.Errorf("could not parse base date %q: %w", entry.BaseDate, err)
		}

		sources[i] = Source{
			URL:      entry.URL,
			BaseDate: baseDate,
		}
	}

	return sources, nil
}
