package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/infrastructure/telemetry"
)

// attachmentDownloadPath is where the PLM serves uploaded files from
const attachmentDownloadPath = "/api/v1/attachments/"

// Search finds styles matching a free-text term, with LOV codes resolved to
// display values and a thumbnail URL derived for each hit.
func (s *Service) Search(ctx context.Context, session Session, term string) ([]StyleSummary, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "connector", "search")
	defer span.End()

	specs, err := s.client.SearchStyles(ctx, session.BaseURL, session.Token, term)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	summaries := make([]StyleSummary, 0, len(specs))
	for i := range specs {
		summary, err := s.summarize(ctx, session, &specs[i])
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Get fetches one style by owner and request number. Exactly one tech spec
// must match; colorway thumbnails and the current render sequence come back
// with it so the design tool can prepare the next publish.
func (s *Service) Get(ctx context.Context, session Session, owner, requestNo string) (*StyleDetail, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "connector", "get")
	defer span.End()

	specs, err := s.client.GetStyle(ctx, session.BaseURL, session.Token, owner, requestNo)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if len(specs) == 0 {
		return nil, &plm.StatusError{
			Kind:       plm.ErrorKindPrecondition,
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("no style found for %s/%s", owner, requestNo),
		}
	}
	if len(specs) > 1 {
		return nil, plm.ErrAmbiguousStyle
	}

	spec := &specs[0]
	summary, err := s.summarize(ctx, session, spec)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	detail := &StyleDetail{
		StyleSummary:       summary,
		Colorways:          make([]ColorwayDetail, 0, len(spec.Colorways)),
		LastRenderSequence: plm.LastRenderSequence(spec.Attachments),
	}
	if project, ok := spec.ProjectFileAttachment(); ok {
		detail.ProjectFileURL = downloadURL(session.BaseURL, project.Location)
	}
	for _, colorway := range spec.Colorways {
		detail.Colorways = append(detail.Colorways, ColorwayDetail{
			Name:          colorway.Name,
			AssociationID: colorway.AssociationID,
			ThumbnailURL:  downloadURL(session.BaseURL, colorway.ThumbnailLocation),
		})
	}
	return detail, nil
}

// summarize builds a search/get summary: display values via the LOV cache,
// thumbnail URL from the thumbnail-marker attachment.
func (s *Service) summarize(ctx context.Context, session Session, spec *plm.TechSpec) (StyleSummary, error) {
	summary := StyleSummary{
		Owner:     spec.Owner,
		RequestNo: spec.RequestNo,
		StyleName: spec.StyleName,
	}

	var err error
	if summary.Department, err = s.displayValue(ctx, session, plm.LOVKeyDepartment, spec.Department); err != nil {
		return summary, err
	}
	if summary.Brand, err = s.displayValue(ctx, session, plm.LOVKeyBrand, spec.Brand); err != nil {
		return summary, err
	}
	if summary.Division, err = s.displayValue(ctx, session, plm.LOVKeyDivision, spec.Division); err != nil {
		return summary, err
	}

	if thumb, ok := spec.ThumbnailAttachment(); ok {
		summary.ThumbnailURL = downloadURL(session.BaseURL, thumb.Location)
	}
	return summary, nil
}

func (s *Service) displayValue(ctx context.Context, session Session, key plm.LOVKey, code string) (string, error) {
	return s.lov.Resolve(ctx, key, code, func(ctx context.Context) (string, error) {
		return s.client.LookupDisplayValue(ctx, session.BaseURL, session.Token, key, code)
	})
}

func downloadURL(baseURL, location string) string {
	if location == "" {
		return ""
	}
	return baseURL + attachmentDownloadPath + url.PathEscape(location)
}
