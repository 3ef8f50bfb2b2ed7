package seekersrv

import (
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/fsx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/google/uuid"
)

const maxCVSize = 10 * 1024 * 1024

var allowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// SeekerService provides business operations for seeker profiles
type SeekerService struct {
	seekerRepo seeker.Repository
	fileSystem fsx.FileSystem
}

// NewSeekerService creates a new instance of the seeker service
func NewSeekerService(seekerRepo seeker.Repository, fileSystem fsx.FileSystem) *SeekerService {
	return &SeekerService{
		seekerRepo: seekerRepo,
		fileSystem: fileSystem,
	}
}

// CreateProfile provisions a seeker profile for a new account
func (s *SeekerService) CreateProfile(ctx context.Context, accountID kernel.AccountID, name string, email kernel.Email) (*seeker.Seeker, error) {
	now := time.Now()
	profile := &seeker.Seeker{
		ID:        kernel.NewSeekerID(uuid.NewString()),
		AccountID: accountID,
		Name:      name,
		Email:     email,
		Status:    seeker.SeekerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.seekerRepo.Create(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to create seeker profile", errx.TypeInternal)
	}

	return profile, nil
}

// ResolveProfile maps an authenticated account to its seeker profile
func (s *SeekerService) ResolveProfile(ctx context.Context, accountID kernel.AccountID) (*seeker.Seeker, error) {
	profile, err := s.seekerRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, seeker.ErrProfileNotFound().WithDetail("account_id", accountID.String())
	}
	return profile, nil
}

// GetProfile retrieves a seeker by profile id
func (s *SeekerService) GetProfile(ctx context.Context, id kernel.SeekerID) (*seeker.SeekerResponse, error) {
	profile, err := s.seekerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, seeker.ErrProfileNotFound().WithDetail("seeker_id", id.String())
	}
	return toResponse(profile), nil
}

// UpdateProfile updates the caller's own profile
func (s *SeekerService) UpdateProfile(ctx context.Context, accountID kernel.AccountID, req seeker.UpdateSeekerRequest) (*seeker.SeekerResponse, error) {
	profile, err := s.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile.UpdateProfile(req.Name, req.Headline, req.Skills, req.Availability)

	if err := s.seekerRepo.Update(ctx, profile.ID, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update seeker profile", errx.TypeInternal)
	}

	return toResponse(profile), nil
}

// UploadCV stores the seeker's CV and records its bucket URL
func (s *SeekerService) UploadCV(ctx context.Context, accountID kernel.AccountID, fileName, contentType string, data []byte) (*seeker.UploadCVResponse, error) {
	profile, err := s.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(data) > maxCVSize {
		return nil, seeker.ErrFileTooLarge().
			WithDetail("file_size", len(data)).
			WithDetail("max_size", maxCVSize)
	}

	if !allowedCVTypes[contentType] {
		return nil, seeker.ErrInvalidFileType().
			WithDetail("content_type", contentType).
			WithDetail("allowed_types", "pdf, doc, docx")
	}

	storagePath := s.fileSystem.Join("cvs", profile.ID.String(), fileName)
	if err := s.fileSystem.WriteFile(ctx, storagePath, data); err != nil {
		return nil, errx.Wrap(err, "failed to upload CV", errx.TypeExternal).
			WithDetail("path", storagePath)
	}

	profile.CVBucketUrl = kernel.BucketURL(storagePath)
	profile.UpdatedAt = time.Now()

	if err := s.seekerRepo.Update(ctx, profile.ID, profile); err != nil {
		// Cleanup uploaded file on failure
		s.fileSystem.DeleteFile(context.Background(), storagePath)
		return nil, errx.Wrap(err, "failed to record CV location", errx.TypeInternal)
	}

	return &seeker.UploadCVResponse{
		SeekerID:   profile.ID,
		BucketURL:  profile.CVBucketUrl,
		FileName:   fileName,
		FileSize:   len(data),
		UploadedAt: profile.UpdatedAt,
	}, nil
}

// DownloadCV streams the seeker's stored CV
func (s *SeekerService) DownloadCV(ctx context.Context, accountID kernel.AccountID) (io.ReadCloser, string, error) {
	profile, err := s.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, "", err
	}

	if !profile.HasCV() {
		return nil, "", seeker.ErrCVNotFound().WithDetail("seeker_id", profile.ID.String())
	}

	stream, err := s.fileSystem.ReadFileStream(ctx, string(profile.CVBucketUrl))
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to download CV", errx.TypeExternal).
			WithDetail("bucket_url", profile.CVBucketUrl)
	}

	return stream, extractFilename(string(profile.CVBucketUrl)), nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func toResponse(s *seeker.Seeker) *seeker.SeekerResponse {
	return &seeker.SeekerResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		Headline:     s.Headline,
		Skills:       s.Skills,
		Availability: s.Availability,
		HasCV:        s.HasCV(),
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func extractFilename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
