package service

import "digicheck_backend/internal/model"

// actionLibrary is the static per-category action table that predates the
// guide catalog. The live selector never consults it; it remains the starter
// plan shown to organizations that have not completed a survey yet, and the
// last-resort content source if the catalog is ever emptied by an operator
// mistake.
var actionLibrary = map[model.CategoryKey][]model.ActionItem{
	model.CategoryCollaboration: {
		{Title: "Move shared files to a central cloud workspace", Link: "/guides/central-cloud-workspace", Category: model.CategoryCollaboration, EstimatedMinutes: 45},
		{Title: "Set up a team chat tool with channels per project", Link: "/guides/team-chat-basics", Category: model.CategoryCollaboration, EstimatedMinutes: 30},
		{Title: "Introduce a shared team calendar", Link: "/guides/shared-calendar", Category: model.CategoryCollaboration, EstimatedMinutes: 20},
	},
	model.CategorySecurity: {
		{Title: "Enable multi-factor authentication everywhere", Link: "/guides/enable-mfa", Category: model.CategorySecurity, EstimatedMinutes: 30},
		{Title: "Adopt a company-wide password manager", Link: "/guides/password-manager", Category: model.CategorySecurity, EstimatedMinutes: 40},
		{Title: "Schedule automatic backups and test a restore", Link: "/guides/backup-and-restore", Category: model.CategorySecurity, EstimatedMinutes: 60},
	},
	model.CategoryFinanceOps: {
		{Title: "Switch to digital invoicing", Link: "/guides/digital-invoicing", Category: model.CategoryFinanceOps, EstimatedMinutes: 50},
		{Title: "Connect your bank feed to your bookkeeping tool", Link: "/guides/bank-feed-bookkeeping", Category: model.CategoryFinanceOps, EstimatedMinutes: 35},
		{Title: "Automate recurring expense capture", Link: "/guides/expense-capture", Category: model.CategoryFinanceOps, EstimatedMinutes: 40},
	},
	model.CategorySalesMarketing: {
		{Title: "Claim and complete your business listing", Link: "/guides/business-listing", Category: model.CategorySalesMarketing, EstimatedMinutes: 25},
		{Title: "Set up a simple CRM for your leads", Link: "/guides/simple-crm", Category: model.CategorySalesMarketing, EstimatedMinutes: 55},
		{Title: "Start a monthly customer newsletter", Link: "/guides/customer-newsletter", Category: model.CategorySalesMarketing, EstimatedMinutes: 45},
	},
	model.CategorySkillsCulture: {
		{Title: "Run a digital-skills self-assessment with your team", Link: "/guides/skills-self-assessment", Category: model.CategorySkillsCulture, EstimatedMinutes: 30},
		{Title: "Block a recurring learning hour per employee", Link: "/guides/learning-hour", Category: model.CategorySkillsCulture, EstimatedMinutes: 15},
		{Title: "Nominate a digital champion", Link: "/guides/digital-champion", Category: model.CategorySkillsCulture, EstimatedMinutes: 20},
	},
}

// StarterActions returns one generic action per category in canonical order,
// for organizations without a scored survey.
func StarterActions() []model.ActionItem {
	out := make([]model.ActionItem, 0, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		if entries := actionLibrary[cat]; len(entries) > 0 {
			out = append(out, entries[0])
		}
	}
	return out
}
