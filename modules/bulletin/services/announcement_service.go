package services

import (
	"context"
	"time"

	"github.com/parishdesk/parishdesk/modules/bulletin/domain/entities/announcement"
)

type AnnouncementService struct {
	repo announcement.Repository
}

func NewAnnouncementService(repo announcement.Repository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

func (s *AnnouncementService) ListActive(ctx context.Context) ([]announcement.Announcement, error) {
	return s.repo.ListActive(ctx, time.Now())
}

func (s *AnnouncementService) GetByID(ctx context.Context, id int64) (announcement.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AnnouncementService) Create(ctx context.Context, dto *announcement.UpsertDTO) (announcement.Announcement, error) {
	return s.repo.Create(ctx, dto.ToEntity())
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, dto *announcement.UpsertDTO) (announcement.Announcement, error) {
	return s.repo.Update(ctx, id, dto.ToEntity())
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
