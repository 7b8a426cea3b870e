package connector

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/domain/style"
	"github.com/stylelink/backend/internal/infrastructure/license"
	"github.com/stylelink/backend/internal/infrastructure/lov"
	"github.com/stylelink/backend/internal/infrastructure/staging"
	"github.com/stylelink/backend/internal/infrastructure/telemetry"
)

// externalIDSeparator joins owner and request number into the default
// external style id when the PLM has not issued one.
const externalIDSeparator = "-:-"

// Service orchestrates the connector's flows: login, style reads, and the
// publish pipeline.
type Service struct {
	client  plm.Client
	stager  *staging.Stager
	lov     *lov.Resolver
	styles  style.Repository
	logins  style.LoginRecordRepository
	license license.Checker
	logger  *zap.Logger
}

// NewService creates the connector service
func NewService(
	client plm.Client,
	stager *staging.Stager,
	lovResolver *lov.Resolver,
	styles style.Repository,
	logins style.LoginRecordRepository,
	licenseChecker license.Checker,
	logger *zap.Logger,
) *Service {
	if licenseChecker == nil {
		licenseChecker = license.NoopChecker{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		stager:  stager,
		lov:     lovResolver,
		styles:  styles,
		logins:  logins,
		license: licenseChecker,
		logger:  logger,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

// Login validates the connector license, authenticates against the PLM, and
// records the login time for the user pair.
func (s *Service) Login(ctx context.Context, in *LoginInput) (*LoginOutput, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "connector", "login")
	defer span.End()

	if in.BaseURL == "" {
		return nil, plm.NewPreconditionError("PLM base URL is required")
	}
	if in.UserID == "" {
		return nil, plm.NewPreconditionError("user id is required")
	}

	if err := s.license.Validate(ctx, in.UserID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result, err := s.client.Login(ctx, in.BaseURL, in.UserID, in.Password)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.logins != nil && in.InternalUser != "" {
		if err := s.logins.RecordLogin(ctx, in.InternalUser, in.UserID, time.Now()); err != nil {
			// Tracking only; the session is already established
			s.logger.Warn("Failed to record login time",
				zap.String("internal_user", in.InternalUser),
				zap.Error(err))
		}
	}

	return &LoginOutput{Token: result.Token, UserName: result.UserName}, nil
}

// ---------------------------------------------------------------------------
// Publish
// ---------------------------------------------------------------------------

// Publish runs one publish attempt end to end: stage assets into a private
// workspace, upload them to the PLM attachment service, reconcile attachment
// slots and colorways, submit the style, and record the style link. The
// workspace is removed on every exit path.
func (s *Service) Publish(ctx context.Context, req *PublishRequest) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "connector", "publish",
		attribute.String("owner", req.Owner),
		attribute.String("request_no", req.RequestNo))
	defer span.End()

	if err := req.validate(); err != nil {
		return err
	}
	if req.ProjectFile.IsEmpty() && req.Thumbnail.IsEmpty() && req.RenderArchive.IsEmpty() {
		return plm.ErrNoStageableAssets
	}

	ws, err := s.stager.Create(req.Owner)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	defer s.stager.Teardown(ws)

	staged, err := s.stageAssets(ctx, ws, req)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	if len(staged.uploads) == 0 {
		return plm.ErrNoStageableAssets
	}

	uploaded, err := s.client.UploadAttachments(ctx, req.BaseURL, req.Token, staged.uploads)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	attachments := s.reconcileAttachments(uploaded, staged, req.LastRenderSequence)
	colorways, skipped := s.mapColorways(req.ColorwayMappings, req.InternalColorways)

	externalID := req.ExternalStyleID
	if externalID == "" {
		externalID = req.Owner + externalIDSeparator + req.RequestNo
	}

	payload := &plm.PublishPayload{
		Owner:           req.Owner,
		RequestNo:       req.RequestNo,
		StyleName:       req.StyleName,
		ExternalStyleID: externalID,
		Attachments:     attachments,
		Colorways:       colorways,
	}

	if err := s.client.PublishStyle(ctx, req.BaseURL, req.Token, payload); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	s.logger.Info("Style published",
		zap.String("owner", req.Owner),
		zap.String("request_no", req.RequestNo),
		zap.Int("attachments", len(attachments)),
		zap.Int("colorways", len(colorways)),
		zap.Int("colorways_skipped", len(skipped)))

	return s.recordStyleLink(ctx, req, externalID)
}

func (r *PublishRequest) validate() error {
	if r.BaseURL == "" {
		return plm.NewPreconditionError("PLM base URL is required")
	}
	if r.Owner == "" {
		return plm.NewPreconditionError("owner is required")
	}
	if r.RequestNo == "" {
		return plm.NewPreconditionError("request number is required")
	}
	if r.InternalStyleID == "" {
		return plm.NewPreconditionError("internal style id is required")
	}
	return nil
}

// recordStyleLink upserts the style link after a successful submission
func (s *Service) recordStyleLink(ctx context.Context, req *PublishRequest, externalID string) error {
	existing, err := s.styles.FindByStyleIDs(ctx, req.InternalStyleID, externalID)
	if err != nil {
		return plm.NewLocalError(err)
	}

	record := existing
	if record == nil {
		record, err = style.NewStyleRecord(req.InternalStyleID, externalID, req.InternalOwner, req.Owner)
		if err != nil {
			return plm.NewLocalError(err)
		}
	} else {
		record.Touch(req.InternalOwner, req.Owner)
	}

	if err := s.styles.Save(ctx, record); err != nil {
		return plm.NewLocalError(err)
	}
	return nil
}

// RecentStyles returns the most recently published style links for a user pair.
func (s *Service) RecentStyles(ctx context.Context, internalOwner, externalOwner string, limit int) ([]style.StyleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.styles.FindRecent(ctx, internalOwner, externalOwner, limit)
}
