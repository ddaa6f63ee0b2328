package services

import (
	"errors"
	"time"

	"gymtrack-backend/internal/models"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

func (s *MemberService) Create(m *models.Member) error {
	if m.Status == "" {
		m.Status = models.StatusActive
	}
	return s.db.Create(m).Error
}

// List returns all members with their status cache refreshed. The stored
// status is only a cache of StatusAt; stale values are corrected in place
// before the rows are returned.
func (s *MemberService) List() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range members {
		status := StatusAt(members[i].EndDate, now)
		if status != members[i].Status {
			members[i].Status = status
			if err := s.db.Model(&members[i]).Update("status", status).Error; err != nil {
				return nil, err
			}
		}
	}

	return members, nil
}

// Get returns a single member, refreshing the stored status cache the same
// way List does.
func (s *MemberService) Get(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	status := DeriveStatus(&member)
	if status != member.Status {
		member.Status = status
		if err := s.db.Model(&member).Update("status", status).Error; err != nil {
			return nil, err
		}
	}

	return &member, nil
}

// Update applies a partial field update. Only the keys present in updates
// are written.
func (s *MemberService) Update(id uint, updates map[string]interface{}) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &member, nil
}

func (s *MemberService) Delete(id uint) error {
	result := s.db.Delete(&models.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
