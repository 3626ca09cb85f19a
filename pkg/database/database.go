package database

import (
	"digicheck_backend/internal/config"
	"digicheck_backend/internal/model"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Guide{},
		&model.SurveyQuestion{},
		&model.SurveySubmission{},
		&model.Benchmark{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedQuestions(db)
	seedBenchmark(db)
	seedGuides(db)

	return db, nil
}

// seedQuestions installs the default 15-question catalog, three per
// category, on first run.
func seedQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.SurveyQuestion{}).Count(&count)
	if count > 0 {
		return
	}

	texts := map[model.CategoryKey][3]string{
		model.CategoryCollaboration: {
			"How does your team share documents and files?",
			"How do employees communicate across locations?",
			"How are meetings scheduled and tracked?",
		},
		model.CategorySecurity: {
			"How are accounts and passwords managed?",
			"How is company data backed up?",
			"How do you handle software and security updates?",
		},
		model.CategoryFinanceOps: {
			"How are invoices created and sent?",
			"How is bookkeeping connected to your bank?",
			"How are recurring expenses tracked?",
		},
		model.CategorySalesMarketing: {
			"How do customers find your business online?",
			"How are leads and customer contacts managed?",
			"How do you stay in touch with existing customers?",
		},
		model.CategorySkillsCulture: {
			"How confident is your team with everyday digital tools?",
			"How is time for learning new tools allocated?",
			"Who drives adoption of new digital tools?",
		},
	}

	for _, cat := range model.AllCategories {
		for i := 0; i < 3; i++ {
			db.Create(&model.SurveyQuestion{
				Key:      fmt.Sprintf("%s_%d", cat, i+1),
				Category: cat,
				Text:     texts[cat][i],
				Version:  1,
				Order:    i + 1,
				Active:   true,
			})
		}
	}
}

func seedBenchmark(db *gorm.DB) {
	var count int64
	db.Model(&model.Benchmark{}).Count(&count)
	if count > 0 {
		return
	}

	values, _ := json.Marshal(map[model.CategoryKey]float64{
		model.CategoryCollaboration:  3.1,
		model.CategorySecurity:       2.8,
		model.CategoryFinanceOps:     2.9,
		model.CategorySalesMarketing: 3.3,
		model.CategorySkillsCulture:  2.6,
	})
	db.Create(&model.Benchmark{
		Year:   2025,
		Source: "SMB digitalization panel",
		Values: values,
	})
}

// seedGuides installs a small starter catalog so a fresh install can produce
// recommendations before the content team has published anything.
func seedGuides(db *gorm.DB) {
	var count int64
	db.Model(&model.Guide{}).Count(&count)
	if count > 0 {
		return
	}

	levelSteps := func(levels ...model.Level) json.RawMessage {
		m := make(map[model.Level][]string, len(levels))
		for _, l := range levels {
			m[l] = []string{"Review your current setup", "Apply the recommended changes", "Verify with your team"}
		}
		out, _ := json.Marshal(m)
		return out
	}

	defaults := []model.Guide{
		{Slug: "central-cloud-workspace", Title: "Move shared files to a central cloud workspace", Category: model.CategoryCollaboration, Status: model.GuidePublished, EstimatedMinutes: 45, ContentByLevel: levelSteps(model.LevelFoundation, model.LevelCore)},
		{Slug: "team-chat-basics", Title: "Set up a team chat tool", Category: model.CategoryCollaboration, Status: model.GuidePublished, EstimatedMinutes: 30, ContentByLevel: levelSteps(model.LevelFoundation)},
		{Slug: "enable-mfa", Title: "Enable multi-factor authentication everywhere", Category: model.CategorySecurity, Status: model.GuidePublished, EstimatedMinutes: 30, ContentByLevel: levelSteps(model.LevelFoundation, model.LevelCore, model.LevelAdvanced)},
		{Slug: "backup-and-restore", Title: "Schedule automatic backups and test a restore", Category: model.CategorySecurity, Status: model.GuidePublished, EstimatedMinutes: 60, ContentByLevel: levelSteps(model.LevelCore)},
		{Slug: "digital-invoicing", Title: "Switch to digital invoicing", Category: model.CategoryFinanceOps, Status: model.GuidePublished, EstimatedMinutes: 50, ContentByLevel: levelSteps(model.LevelFoundation, model.LevelCore)},
		{Slug: "business-listing", Title: "Claim and complete your business listing", Category: model.CategorySalesMarketing, Status: model.GuidePublished, EstimatedMinutes: 25, ContentByLevel: levelSteps(model.LevelFoundation)},
		{Slug: "simple-crm", Title: "Set up a simple CRM for your leads", Category: model.CategorySalesMarketing, Status: model.GuidePublished, EstimatedMinutes: 55, ContentByLevel: levelSteps(model.LevelCore, model.LevelAdvanced)},
		{Slug: "skills-self-assessment", Title: "Run a digital-skills self-assessment", Category: model.CategorySkillsCulture, Status: model.GuidePublished, EstimatedMinutes: 30, ContentByLevel: levelSteps(model.LevelFoundation)},
	}
	for _, g := range defaults {
		db.Create(&g)
	}
}
