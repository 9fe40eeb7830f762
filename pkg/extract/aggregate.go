package extract

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kotrzina/dobijecka/pkg/htmldoc"
	"github.com/kotrzina/dobijecka/pkg/utils"
)

type Aggregator struct {
	downloader Downloader
	parser     *Parser
	sources    []Source
	logger     *logrus.Logger
}

func NewAggregator(downloader Downloader, parser *Parser, sources []Source, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		downloader: downloader,
		parser:     parser,
		sources:    sources,
		logger:     logger,
	}
}

// Run parses all sources in order and merges the announcements into a
// single list sorted by date descending. The pages overlap - an
// announcement already seen on a previous page may appear again, but
// its scheduling data must be identical. The first seen instance is
// kept as the canonical one.
func (a *Aggregator) Run() ([]Announcement, error) {
	byDate := make(map[time.Time]Announcement)

	for _, source := range a.sources {
		a.logger.Infof("downloading %s", source.URL)
		body, err := a.downloader.Download(source.URL)
		if err != nil {
			return nil, Errorf("failed to download %s: %v", source.URL, err)
		}

		doc, err := htmldoc.Parse(body)
		if err != nil {
			return nil, Errorf("failed to parse html from %s: %v", source.URL, err)
		}

		announcements, err := a.parser.ParsePage(doc, source.BaseDate)
		if err != nil {
			return nil, err
		}

		for _, announcement := range announcements {
			previous, seen := byDate[announcement.Date]
			if !seen {
				byDate[announcement.Date] = announcement
				continue
			}

			if !announcement.DatetimeMatches(previous) {
				return nil, Errorf(
					"two announcements from %s differ: %d-%d != %d-%d",
					utils.FormatDate(announcement.Date),
					announcement.HourBegin, announcement.HourEnd,
					previous.HourBegin, previous.HourEnd,
				)
			}
		}
	}

	if len(byDate) == 0 {
		return nil, Errorf("no dobijecka announcements could be extracted")
	}

	list := make([]Announcement, 0, len(byDate))
	for _, announcement := range byDate {
		list = append(list, announcement)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})

	a.logger.Infof("a total of %d dobijecka announcements extracted from all sources", len(list))
	return list, nil
}
