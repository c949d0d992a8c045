package main

import (
	"errors"
	"time"

	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/constants"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/models"

	"gorm.io/gorm"
)

type serviceSeed struct {
	CategorySlug string
	Name         string
	Slug         string
	Description  string
	Price        string
	Duration     int
}

type staffSeed struct {
	Name     string
	Position string
	Skills   []string
	Years    int
	Services []string
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.Connect(cfg.Database, false); err != nil {
		stdLog.Fatalf("Failed to prepare database: %v", err)
	}

	db := models.DB
	categoryIDs, err := seedCategories(db)
	if err != nil {
		stdLog.Fatalf("Failed to seed categories: %v", err)
	}
	serviceIDs, err := seedServices(db, categoryIDs)
	if err != nil {
		stdLog.Fatalf("Failed to seed services: %v", err)
	}
	if err := seedPromotions(db, categoryIDs, serviceIDs, time.Now()); err != nil {
		stdLog.Fatalf("Failed to seed promotions: %v", err)
	}
	if err := seedStaff(db, serviceIDs); err != nil {
		stdLog.Fatalf("Failed to seed staff: %v", err)
	}
	if err := seedGallery(db); err != nil {
		stdLog.Fatalf("Failed to seed gallery: %v", err)
	}
	if err := seedContent(db); err != nil {
		stdLog.Fatalf("Failed to seed content settings: %v", err)
	}
	stdLog.Printf("Seed completed")
}

func seedCategories(db *gorm.DB) (map[string]string, error) {
	categories := []models.ServiceCategory{
		{Name: "Nail", Slug: "nail", SortOrder: 30},
		{Name: "Eyelash", Slug: "eyelash", SortOrder: 20},
		{Name: "Facial", Slug: "facial", SortOrder: 10},
	}
	ids := make(map[string]string, len(categories))
	for _, cat := range categories {
		var existing models.ServiceCategory
		err := db.Where("slug = ?", cat.Slug).First(&existing).Error
		switch {
		case err == nil:
			ids[cat.Slug] = existing.ID
			logger.Infow("seed_category_exists", "slug", cat.Slug)
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
		if err := db.Create(&cat).Error; err != nil {
			return nil, err
		}
		ids[cat.Slug] = cat.ID
		logger.Infow("seed_category_created", "slug", cat.Slug)
	}
	return ids, nil
}

func seedServices(db *gorm.DB, categoryIDs map[string]string) (map[string]string, error) {
	seeds := []serviceSeed{
		{CategorySlug: "nail", Name: "Sơn gel", Slug: "gel-polish", Description: "Sơn gel bền màu 3 tuần", Price: "200000", Duration: 60},
		{CategorySlug: "nail", Name: "Đắp bột", Slug: "acrylic-extension", Description: "Nối móng bột tự nhiên", Price: "450000", Duration: 90},
		{CategorySlug: "nail", Name: "Chăm sóc móng chân", Slug: "pedicure-spa", Description: "Ngâm, tẩy da chết và sơn thường", Price: "250000", Duration: 75},
		{CategorySlug: "eyelash", Name: "Nối mi classic", Slug: "classic-lash", Description: "Mỗi sợi mi thật một sợi mi nối", Price: "350000", Duration: 90},
		{CategorySlug: "eyelash", Name: "Nối mi volume", Slug: "volume-lash", Description: "Mi dày tự nhiên 3D-5D", Price: "550000", Duration: 120},
		{CategorySlug: "facial", Name: "Chăm sóc da cơ bản", Slug: "basic-facial", Description: "Làm sạch sâu và đắp mặt nạ", Price: "300000", Duration: 60},
		{CategorySlug: "facial", Name: "Trị mụn chuyên sâu", Slug: "acne-treatment", Description: "Lấy nhân mụn và điện di", Price: "400000", Duration: 75},
	}
	ids := make(map[string]string, len(seeds))
	for _, seed := range seeds {
		var existing models.Service
		err := db.Where("slug = ?", seed.Slug).First(&existing).Error
		switch {
		case err == nil:
			ids[seed.Slug] = existing.ID
			logger.Infow("seed_service_exists", "slug", seed.Slug)
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
		svc := models.Service{
			CategoryID:   categoryIDs[seed.CategorySlug],
			Name:         seed.Name,
			Slug:         seed.Slug,
			Description:  seed.Description,
			BasePrice:    models.NewMoney(seed.Price),
			DurationMins: seed.Duration,
			IsActive:     true,
		}
		if err := db.Create(&svc).Error; err != nil {
			return nil, err
		}
		ids[seed.Slug] = svc.ID
		logger.Infow("seed_service_created", "slug", seed.Slug, "base_price", svc.BasePrice.String())
	}
	return ids, nil
}

func seedPromotions(db *gorm.DB, categoryIDs, serviceIDs map[string]string, now time.Time) error {
	nailCategory := categoryIDs["nail"]
	volumeLash := serviceIDs["volume-lash"]
	promotions := []models.Promotion{
		{
			Title:        "Tuần lễ vàng",
			Description:  "Giảm 10% toàn bộ dịch vụ",
			DiscountType: constants.DiscountTypePercent,
			Value:        models.NewMoney("10"),
			ScopeType:    constants.ScopeTypeGlobal,
			StartAt:      now.Add(-24 * time.Hour),
			EndAt:        now.Add(7 * 24 * time.Hour),
			IsActive:     true,
		},
		{
			Title:        "Nail party",
			Description:  "Giảm 50.000đ cho dịch vụ nail",
			DiscountType: constants.DiscountTypeAmount,
			Value:        models.NewMoney("50000"),
			ScopeType:    constants.ScopeTypeCategory,
			ScopeID:      &nailCategory,
			StartAt:      now.Add(-24 * time.Hour),
			EndAt:        now.Add(3 * 24 * time.Hour),
			IsActive:     true,
		},
		{
			Title:        "Mi volume cuối tuần",
			Description:  "Giảm 20% nối mi volume",
			DiscountType: constants.DiscountTypePercent,
			Value:        models.NewMoney("20"),
			ScopeType:    constants.ScopeTypeService,
			ScopeID:      &volumeLash,
			StartAt:      now.Add(2 * 24 * time.Hour),
			EndAt:        now.Add(4 * 24 * time.Hour),
			IsActive:     true,
		},
	}
	for _, promo := range promotions {
		var count int64
		if err := db.Model(&models.Promotion{}).Where("title = ?", promo.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Infow("seed_promotion_exists", "title", promo.Title)
			continue
		}
		if err := db.Create(&promo).Error; err != nil {
			return err
		}
		logger.Infow("seed_promotion_created", "title", promo.Title, "scope_type", promo.ScopeType)
	}
	return nil
}

func seedStaff(db *gorm.DB, serviceIDs map[string]string) error {
	seeds := []staffSeed{
		{Name: "Ngọc Anh", Position: "Nail artist", Skills: []string{"gel", "acrylic", "nail art"}, Years: 5, Services: []string{"gel-polish", "acrylic-extension", "pedicure-spa"}},
		{Name: "Thu Hà", Position: "Lash stylist", Skills: []string{"classic", "volume"}, Years: 3, Services: []string{"classic-lash", "volume-lash"}},
		{Name: "Minh Thư", Position: "Skin therapist", Skills: []string{"facial", "acne care"}, Years: 4, Services: []string{"basic-facial", "acne-treatment"}},
	}
	workDays := []string{
		constants.DayTuesday, constants.DayWednesday, constants.DayThursday,
		constants.DayFriday, constants.DaySaturday, constants.DaySunday,
	}
	for _, seed := range seeds {
		var count int64
		if err := db.Model(&models.Staff{}).Where("name = ?", seed.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Infow("seed_staff_exists", "name", seed.Name)
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			staff := models.Staff{
				Name:            seed.Name,
				Position:        seed.Position,
				Skills:          models.StringArray(seed.Skills),
				ExperienceYears: seed.Years,
				IsActive:        true,
			}
			if err := tx.Create(&staff).Error; err != nil {
				return err
			}
			for _, day := range workDays {
				slot := models.StaffAvailability{StaffID: staff.ID, DayOfWeek: day, StartTime: "09:00", EndTime: "19:00", IsActive: true}
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
			for _, slug := range seed.Services {
				serviceID, ok := serviceIDs[slug]
				if !ok {
					continue
				}
				link := models.StaffService{StaffID: staff.ID, ServiceID: serviceID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		logger.Infow("seed_staff_created", "name", seed.Name)
	}
	return nil
}

func seedGallery(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	images := []models.GalleryImage{
		{URL: "/uploads/gallery/nail-01.jpg", Category: constants.GalleryCategoryNail, Caption: "French ombre", SortOrder: 30},
		{URL: "/uploads/gallery/lash-01.jpg", Category: constants.GalleryCategoryEyelash, Caption: "Volume 4D", SortOrder: 20},
		{URL: "/uploads/gallery/facial-01.jpg", Category: constants.GalleryCategoryFacial, Caption: "Phòng chăm sóc da", SortOrder: 10},
		{URL: "/uploads/gallery/salon-01.jpg", Category: constants.GalleryCategoryGeneral, Caption: "Không gian salon", SortOrder: 0},
	}
	return db.Create(&images).Error
}

func seedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ContentSetting{}).Where("id = ?", models.ContentSettingSingletonID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	setting := models.ContentSetting{
		ID:           models.ContentSettingSingletonID,
		Slogans:      models.StringArray{"Đẹp tự nhiên, chuẩn từng chi tiết", "Nail - Mi - Da"},
		Address:      "12 Nguyễn Huệ, Quận 1, TP. Hồ Chí Minh",
		FacebookURL:  "https://facebook.com/salon",
		ZaloURL:      "https://zalo.me/0900000000",
		InstagramURL: "https://instagram.com/salon",
		Phone:        "0900000000",
		OpeningHours: models.JSON{"weekdays": "09:00-20:00", "weekend": "08:30-21:00", "monday": "closed"},
		HeroImages:   models.StringArray{"/uploads/hero/hero-01.jpg"},
		SEO:          models.JSON{"title": "Salon Nail & Lash", "description": "Nail, nối mi và chăm sóc da"},
	}
	return db.Create(&setting).Error
}
