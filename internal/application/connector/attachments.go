package connector

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/infrastructure/staging"
)

// stagedAssets records what one attempt placed in its workspace. Names key
// the later reconciliation of upload results to attachment slots.
type stagedAssets struct {
	uploads []plm.UploadFile

	projectName string
	thumbName   string
	// renderNames in upload order; position determines the render number
	renderNames []string
}

// stageAssets materializes the request's assets inside the workspace. The
// render archive itself is never uploaded; only its extracted files are.
func (s *Service) stageAssets(ctx context.Context, ws *staging.Workspace, req *PublishRequest) (*stagedAssets, error) {
	staged := &stagedAssets{}

	if !req.ProjectFile.IsEmpty() {
		path, err := s.stageOne(ctx, ws, req.ProjectFile)
		if err != nil {
			return nil, err
		}
		staged.projectName = req.ProjectFile.Name
		staged.uploads = append(staged.uploads, plm.UploadFile{Name: req.ProjectFile.Name, Path: path})
	}

	if !req.Thumbnail.IsEmpty() {
		path, err := s.stageOne(ctx, ws, req.Thumbnail)
		if err != nil {
			return nil, err
		}
		staged.thumbName = req.Thumbnail.Name
		staged.uploads = append(staged.uploads, plm.UploadFile{Name: req.Thumbnail.Name, Path: path})
	}

	if !req.RenderArchive.IsEmpty() {
		archivePath, err := s.stageOne(ctx, ws, req.RenderArchive)
		if err != nil {
			return nil, err
		}
		renderPaths, err := s.stager.ExtractRenders(ws, archivePath)
		if err != nil {
			return nil, err
		}
		for _, p := range renderPaths {
			name := filepath.Base(p)
			staged.renderNames = append(staged.renderNames, name)
			staged.uploads = append(staged.uploads, plm.UploadFile{Name: name, Path: p})
		}
	}

	return staged, nil
}

func (s *Service) stageOne(ctx context.Context, ws *staging.Workspace, asset Asset) (string, error) {
	if len(asset.Data) > 0 {
		return s.stager.StageBytes(ws, asset.Name, asset.Data)
	}
	return s.stager.StageURL(ctx, ws, asset.Name, asset.URL)
}

// reconcileAttachments binds each accepted upload to its attachment slot.
// Renders keep their upload order: the Nth render (0-indexed) is numbered
// lastSequence+N+1. Files matching no declared asset are left out of the
// payload.
func (s *Service) reconcileAttachments(uploaded []plm.UploadedFile, staged *stagedAssets, lastSequence int) []plm.PublishAttachment {
	renderIndex := make(map[string]int, len(staged.renderNames))
	for i, name := range staged.renderNames {
		renderIndex[name] = i
	}

	attachments := make([]plm.PublishAttachment, 0, len(uploaded))
	for _, up := range uploaded {
		var attachmentNo string
		switch {
		case staged.projectName != "" && up.OriginalName == staged.projectName:
			attachmentNo = plm.AttachmentNumberProjectFile
		case staged.thumbName != "" && up.OriginalName == staged.thumbName:
			attachmentNo = plm.AttachmentNumberThumbnail
		default:
			idx, ok := renderIndex[up.OriginalName]
			if !ok {
				s.logger.Warn("Uploaded file matched no attachment slot, dropping",
					zap.String("file", up.OriginalName),
					zap.String("reason", string(plm.SkipUnmatchedAttachment)))
				continue
			}
			attachmentNo = plm.RenderAttachmentNumber(lastSequence + idx + 1)
		}

		attachments = append(attachments, plm.PublishAttachment{
			AttachmentNumber: attachmentNo,
			FileName:         up.OriginalName,
			Location:         up.NewName,
		})
	}
	return attachments
}
