package source

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/permission"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	"github.com/louisbranch/translating.space/internal/services/translate/unitfilter"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translating.space/internal/services/web/platform/paginate"
)

// DefaultPageSize is the review listing page size when none is requested.
const DefaultPageSize = 50

// Gateway reads the catalog data rendered by source pages.
type Gateway interface {
	ResolveSource(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Source, error)
	SummarizeSource(ctx context.Context, translationID int64) (storage.SourceSummary, error)
	CountUnits(ctx context.Context, translationID int64, filter storage.UnitFilter) (int, error)
	ListUnits(ctx context.Context, translationID int64, filter storage.UnitFilter, offset int, limit int) ([]storage.Unit, error)
	ListSourcesByChecksums(ctx context.Context, componentID int64, checksums []string) (map[string]storage.Source, error)
	SourceCapabilities(ctx context.Context, user storage.User, project storage.Project) (permission.Capabilities, error)
}

// ReviewQuery is the parsed query string of the review listing.
type ReviewQuery struct {
	Type     string
	Limit    string
	Page     string
	Checksum string
	Ignored  bool
}

// ParseReviewQuery reads review listing parameters. Ignored is a presence
// flag.
func ParseReviewQuery(values url.Values) ReviewQuery {
	_, ignored := values["ignored"]
	typ := strings.TrimSpace(values.Get("type"))
	if typ == "" {
		typ = unitfilter.DefaultType
	}
	return ReviewQuery{
		Type:     typ,
		Limit:    values.Get("limit"),
		Page:     values.Get("page"),
		Checksum: strings.TrimSpace(values.Get("checksum")),
		Ignored:  ignored,
	}
}

// QueryString encodes the filter part of the query, used to carry the filter
// across pages.
func (q ReviewQuery) QueryString() string {
	values := url.Values{}
	values.Set("type", q.Type)
	if q.Ignored {
		values.Set("ignored", "true")
	}
	return values.Encode()
}

// pageQuery returns the query selecting another page of the same listing.
func (q ReviewQuery) pageQuery(size int, page int) url.Values {
	values := url.Values{}
	if q.Checksum != "" {
		values.Set("checksum", q.Checksum)
	} else {
		values.Set("type", q.Type)
		if q.Ignored {
			values.Set("ignored", "true")
		}
	}
	if size != DefaultPageSize {
		values.Set("limit", strconv.Itoa(size))
	}
	values.Set("page", strconv.Itoa(page))
	return values
}

// Summary is the data of the source summary page.
type Summary struct {
	Source  catalog.Source
	Summary storage.SourceSummary
}

// ReviewItem is one listed unit with its source metadata.
type ReviewItem struct {
	Unit      storage.Unit
	Source    storage.Source
	HasSource bool
}

// Review is the data of the source review listing.
type Review struct {
	Source       catalog.Source
	Query        ReviewQuery
	Expand       bool
	Page         paginate.Page
	Items        []ReviewItem
	Capabilities permission.Capabilities
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadSummary(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (Summary, error) {
	src, err := s.resolve(ctx, user, projectSlug, componentSlug)
	if err != nil {
		return Summary{}, err
	}
	summary, err := s.gateway.SummarizeSource(ctx, src.Translation.ID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Source: src, Summary: summary}, nil
}

func (s service) loadReview(ctx context.Context, user storage.User, projectSlug string, componentSlug string, query ReviewQuery) (Review, error) {
	src, err := s.resolve(ctx, user, projectSlug, componentSlug)
	if err != nil {
		return Review{}, err
	}

	review := Review{Source: src, Query: query}
	filter := unitfilter.Parse(query.Type, query.Ignored)
	if query.Checksum != "" {
		filter = unitfilter.ForChecksum(query.Checksum)
		review.Expand = true
	}

	count, err := s.gateway.CountUnits(ctx, src.Translation.ID, filter)
	if err != nil {
		return Review{}, err
	}
	review.Page = paginate.Resolve(count, paginate.ParseSize(query.Limit, DefaultPageSize), query.Page)
	if count == 0 {
		return review, nil
	}

	units, err := s.gateway.ListUnits(ctx, src.Translation.ID, filter, review.Page.Offset(), review.Page.Size)
	if err != nil {
		return Review{}, err
	}
	checksums := make([]string, 0, len(units))
	for _, unit := range units {
		checksums = append(checksums, unit.Checksum)
	}
	sources, err := s.gateway.ListSourcesByChecksums(ctx, src.Component.Component.ID, checksums)
	if err != nil {
		return Review{}, err
	}
	review.Items = make([]ReviewItem, 0, len(units))
	for _, unit := range units {
		meta, ok := sources[unit.Checksum]
		review.Items = append(review.Items, ReviewItem{Unit: unit, Source: meta, HasSource: ok})
	}

	review.Capabilities, err = s.gateway.SourceCapabilities(ctx, user, src.Project)
	if err != nil {
		return Review{}, err
	}
	return review, nil
}

// resolve loads the component and its source translation, mapping lookups
// that found nothing onto 404 errors.
func (s service) resolve(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Source, error) {
	src, err := s.gateway.ResolveSource(ctx, user, projectSlug, componentSlug)
	switch {
	case err == nil:
		return src, nil
	case errors.Is(err, catalog.ErrNoTranslation):
		return catalog.Source{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.no_translation", err)
	case errors.Is(err, storage.ErrNotFound):
		return catalog.Source{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
	default:
		return catalog.Source{}, err
	}
}
