package service

import (
	"strings"
	"time"

	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/models"
	"github.com/salon-next/internal/repository"
)

// StaffService 技师管理
type StaffService struct {
	repo        repository.StaffRepository
	serviceRepo repository.ServiceRepository
}

// NewStaffService 创建技师服务
func NewStaffService(repo repository.StaffRepository, serviceRepo repository.ServiceRepository) *StaffService {
	return &StaffService{repo: repo, serviceRepo: serviceRepo}
}

// StaffInput 创建/更新技师输入
type StaffInput struct {
	Name            string
	Email           string
	Phone           string
	Position        string
	Bio             string
	ProfileImageURL string
	Skills          []string
	ExperienceYears int
	IsActive        *bool
}

// AvailabilityInput 排班时段输入
type AvailabilityInput struct {
	DayOfWeek string
	StartTime string
	EndTime   string
	IsActive  *bool
}

// ListPublic 前台在职技师
func (s *StaffService) ListPublic(filter repository.StaffListFilter) ([]models.Staff, int64, error) {
	filter.OnlyActive = true
	return s.repo.List(filter)
}

// List 后台技师列表
func (s *StaffService) List(filter repository.StaffListFilter) ([]models.Staff, int64, error) {
	return s.repo.List(filter)
}

// Get 技师详情
func (s *StaffService) Get(id string) (*models.Staff, error) {
	staff, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

// Create 创建技师
func (s *StaffService) Create(input StaffInput) (*models.Staff, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.ExperienceYears < 0 {
		return nil, ErrStaffInvalid
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	staff := &models.Staff{IsActive: isActive}
	applyStaffInput(staff, name, input)
	if err := s.repo.Create(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Update 更新技师
func (s *StaffService) Update(id string, input StaffInput) (*models.Staff, error) {
	staff, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || input.ExperienceYears < 0 {
		return nil, ErrStaffInvalid
	}
	applyStaffInput(staff, name, input)
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if err := s.repo.Update(staff); err != nil {
		return nil, err
	}
	return s.Get(staff.ID)
}

// Delete 删除技师及其排班与服务关联
func (s *StaffService) Delete(id string) error {
	staff, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(staff.ID)
}

// ReplaceAvailability 整体替换每周排班
func (s *StaffService) ReplaceAvailability(id string, inputs []AvailabilityInput) (*models.Staff, error) {
	staff, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	slots := make([]models.StaffAvailability, 0, len(inputs))
	for _, input := range inputs {
		slot, err := buildAvailabilitySlot(input)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := s.repo.ReplaceAvailability(staff.ID, slots); err != nil {
		return nil, err
	}
	return s.Get(staff.ID)
}

// ReplaceServices 整体替换技师可提供的服务
func (s *StaffService) ReplaceServices(id string, serviceIDs []string) (*models.Staff, error) {
	staff, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ids := uniqueTrimmed(serviceIDs)
	services, err := s.serviceRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, ErrServiceNotFound
	}
	if err := s.repo.ReplaceServices(staff.ID, ids); err != nil {
		return nil, err
	}
	return s.Get(staff.ID)
}

func applyStaffInput(staff *models.Staff, name string, input StaffInput) {
	staff.Name = name
	staff.Email = strings.TrimSpace(input.Email)
	staff.Phone = strings.TrimSpace(input.Phone)
	staff.Position = strings.TrimSpace(input.Position)
	staff.Bio = strings.TrimSpace(input.Bio)
	staff.ProfileImageURL = strings.TrimSpace(input.ProfileImageURL)
	staff.Skills = models.StringArray(uniqueTrimmed(input.Skills))
	staff.ExperienceYears = input.ExperienceYears
}

func buildAvailabilitySlot(input AvailabilityInput) (models.StaffAvailability, error) {
	day := strings.ToUpper(strings.TrimSpace(input.DayOfWeek))
	if !isValidDayOfWeek(day) {
		return models.StaffAvailability{}, ErrAvailabilityInvalid
	}
	start, err := ParseHHMM(input.StartTime)
	if err != nil {
		return models.StaffAvailability{}, ErrAvailabilityInvalid
	}
	end, err := ParseHHMM(input.EndTime)
	if err != nil {
		return models.StaffAvailability{}, ErrAvailabilityInvalid
	}
	if !end.After(start) {
		return models.StaffAvailability{}, ErrAvailabilityInvalid
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return models.StaffAvailability{
		DayOfWeek: day,
		StartTime: start.Format(hhmmLayout),
		EndTime:   end.Format(hhmmLayout),
		IsActive:  isActive,
	}, nil
}

const hhmmLayout = "15:04"

// ParseHHMM 解析 24 小时制 HH:MM
func ParseHHMM(raw string) (time.Time, error) {
	return time.Parse(hhmmLayout, strings.TrimSpace(raw))
}

func isValidDayOfWeek(day string) bool {
	switch day {
	case constants.DayMonday, constants.DayTuesday, constants.DayWednesday, constants.DayThursday,
		constants.DayFriday, constants.DaySaturday, constants.DaySunday:
		return true
	default:
		return false
	}
}

func uniqueTrimmed(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
