package extract

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FakeDownloader serves pages from memory
type FakeDownloader struct {
	pages map[string]string
}

func (d *FakeDownloader) Download(url string) (string, error) {
	body, ok := d.pages[url]
	if !ok {
		return "", fmt.Errorf("unexpected status code 404 from %s", url)
	}

	return body, nil
}

func newTestAggregator(pages map[string]string, sources []Source) *Aggregator {
	logger := logrus.New()
	return NewAggregator(&FakeDownloader{pages: pages}, NewParser(logger), sources, logger)
}

func TestAggregatorMergesOverlappingSources(t *testing.T) {
	pages := map[string]string{
		"https://example.com/live": page(
			article("Dobíječka je tady", "Dneska 20. 5. od 16.00 do 19.00 dostaneš dvojnásob."),
			article("Dobíječka", "Dobij si dneska 12. 4. mezi 15. až 18. hodinou."),
		),
		"https://example.com/archive": page(
			// same date as on the live page, differently worded
			article("Dobíječka zase jede", "Dobij si 12. 4. mezi 15. až 18. hodinou a uvidíš."),
			article("Dobíječka", "Dneska 1. 2. od 16 do 19 dostaneš dvojnásob."),
		),
	}

	sources := []Source{
		{URL: "https://example.com/live", BaseDate: date(2022, time.May, 24)},
		{URL: "https://example.com/archive", BaseDate: date(2022, time.April, 13)},
	}

	announcements, err := newTestAggregator(pages, sources).Run()
	require.NoError(t, err)
	require.Len(t, announcements, 3)

	// sorted by date descending
	assert.Equal(t, date(2022, time.May, 20), announcements[0].Date)
	assert.Equal(t, date(2022, time.April, 12), announcements[1].Date)
	assert.Equal(t, date(2022, time.February, 1), announcements[2].Date)

	// the first seen instance is the canonical one
	assert.Equal(t, "Dobíječka", announcements[1].Title)
}

func TestAggregatorDatetimeConflict(t *testing.T) {
	pages := map[string]string{
		"https://example.com/live": page(
			article("Dobíječka", "Dneska 12. 4. od 16 do 19 dostaneš dvojnásob."),
		),
		"https://example.com/archive": page(
			article("Dobíječka", "Dneska 12. 4. od 15 do 18 dostaneš dvojnásob."),
		),
	}

	sources := []Source{
		{URL: "https://example.com/live", BaseDate: date(2022, time.May, 24)},
		{URL: "https://example.com/archive", BaseDate: date(2022, time.May, 24)},
	}

	_, err := newTestAggregator(pages, sources).Run()
	require.Error(t, err)
	assert.IsType(t, &ExtractionError{}, err)
	assert.Contains(t, err.Error(), "differ")
}

func TestAggregatorDownloadFailure(t *testing.T) {
	sources := []Source{
		{URL: "https://example.com/missing", BaseDate: date(2022, time.May, 24)},
	}

	_, err := newTestAggregator(map[string]string{}, sources).Run()
	require.Error(t, err)
	assert.IsType(t, &ExtractionError{}, err)
}

func TestAggregatorNoSources(t *testing.T) {
	_, err := newTestAggregator(map[string]string{}, nil).Run()
	require.Error(t, err)
	assert.IsType(t, &ExtractionError{}, err)
	assert.Contains(t, err.Error(), "no dobijecka announcements")
}

func TestAggregatorParseErrorAborts(t *testing.T) {
	pages := map[string]string{
		"https://example.com/live": page(
			article("Dobíječka", "Dneska 12. 4. od 16 do 19 dostaneš dvojnásob."),
		),
		"https://example.com/empty": "<html><body></body></html>",
	}

	sources := []Source{
		{URL: "https://example.com/live", BaseDate: date(2022, time.May, 24)},
		{URL: "https://example.com/empty", BaseDate: date(2022, time.May, 24)},
	}

	_, err := newTestAggregator(pages, sources).Run()
	require.Error(t, err)
	assert.IsType(t, &ExtractionError{}, err)
}
