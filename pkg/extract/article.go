package extract

import (
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kotrzina/dobijecka/pkg/htmldoc"
	"github.com/kotrzina/dobijecka/pkg/utils"
)

const (
	articleTag   = "div"
	articleClass = "journal-content-article"
)

// share prompt appended to every description on the news page
var reSharePrompt = regexp.MustCompile(`(?i)Sdílet\s+na\s+Facebooku`)

type Parser struct {
	logger *logrus.Logger
}

func NewParser(logger *logrus.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ParsePage extracts all dobijecka announcements from one news page.
// Articles appear newest first, so the date resolved from each article
// becomes the base date for the next one. A date later than the running
// base date breaks the page ordering assumption and is fatal.
func (p *Parser) ParsePage(doc htmldoc.Document, baseDate time.Time) ([]Announcement, error) {
	articles := doc.FindAll(articleTag, articleClass)
	if len(articles) == 0 {
		return nil, Errorf("could not find any news articles in the html")
	}

	announcements := make([]Announcement, 0, len(articles))
	for _, article := range articles {
		title, err := p.extractTitle(article)
		if err != nil {
			return nil, err
		}

		description, err := p.extractDescription(article)
		if err != nil {
			return nil, err
		}

		date, ok, err := ResolveDate(description, baseDate)
		if err != nil {
			return nil, err
		}
		if !ok {
			p.logger.Infof("news article is not a dobijecka announcement: %q --- %q", title, description)
			continue
		}

		begin, end, ok := ResolveHours(title, description)
		if !ok {
			p.logger.Infof("news article is not a dobijecka announcement: %q --- %q", title, description)
			continue
		}

		if date.After(baseDate) {
			return nil, Errorf(
				"announcements are not in retrospective order (date: %s, base date: %s)",
				utils.FormatDate(date), utils.FormatDate(baseDate),
			)
		}

		announcements = append(announcements, Announcement{
			Date:        date,
			HourBegin:   begin,
			HourEnd:     end,
			Title:       title,
			Description: description,
		})

		baseDate = date
	}

	if len(announcements) == 0 {
		return nil, Errorf("even though %d news articles were found in the html, none of them could be parsed", len(articles))
	}

	p.logger.Infof("%d dobijecka announcements found in the html", len(announcements))
	return announcements, nil
}

func (p *Parser) extractTitle(article htmldoc.Element) (string, error) {
	el, ok := article.FindFirst("h3")
	if !ok {
		return "", Errorf("could not find a title in the news article")
	}

	return utils.Normalize(el.Text()), nil
}

func (p *Parser) extractDescription(article htmldoc.Element) (string, error) {
	el, ok := article.FindFirst("p")
	if !ok {
		return "", Errorf("could not find a description in the news article")
	}

	return utils.Normalize(reSharePrompt.ReplaceAllString(el.Text(), "")), nil
}
