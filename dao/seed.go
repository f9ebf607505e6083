package dao

import (
	"time"

	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/model/neo4j/style"
)

func SeedUsers() []model.User {
	return []model.User{
		{ID: "admin-1", Name: "Sarah Chen", Role: model.RoleAdmin, Email: "sarah.chen@docflow.local"},
		{ID: "mgr-1", Name: "James Wilson", Role: model.RoleManager, Email: "james.wilson@docflow.local"},
		{ID: "mgr-2", Name: "Priya Patel", Role: model.RoleManager, Email: "priya.patel@docflow.local"},
		{ID: "emp-1", Name: "Tom Baker", Role: model.RoleEmployee, Email: "tom.baker@docflow.local"},
	}
}

func SeedDepartments() []model.Department {
	created := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	return []model.Department{
		{ID: "engineering", Name: "Engineering", Path: "Engineering", Color: style.PaletteColor(0), CreatedAt: created,
			Children: []model.Department{
				{ID: "engineering-backend", Name: "Backend", Path: "Engineering/Backend", ParentID: "engineering",
					Color: style.PaletteColor(1), CreatedAt: created},
				{ID: "engineering-frontend", Name: "Frontend", Path: "Engineering/Frontend", ParentID: "engineering",
					Color: style.PaletteColor(2), CreatedAt: created},
			}},
		{ID: "finance", Name: "Finance", Path: "Finance", Color: style.PaletteColor(3), CreatedAt: created},
		{ID: "human-resources", Name: "Human Resources", Path: "Human Resources", Color: style.PaletteColor(4), CreatedAt: created},
		{ID: "legal", Name: "Legal", Path: "Legal", Color: style.PaletteColor(5), CreatedAt: created},
	}
}

// SeedDocuments is anchored to the current time so the date range filters
// have something to show.
func SeedDocuments() []model.Document {
	now := time.Now().UTC().Truncate(time.Minute)
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	ptr := func(t time.Time) *time.Time { return &t }
	day := 24 * time.Hour

	return []model.Document{
		{ID: "doc-1", Title: "Q3 Budget Forecast", Description: "Quarterly budget projections",
			Tags: []string{"budget", "forecast"}, Department: "Finance", Type: "Report", FileType: "xlsx", Size: 248_000,
			UploadedBy: "Tom Baker", UploadedAt: ago(2 * time.Hour),
			ApprovalStatus: model.StatusPending, AssignedTo: "mgr-1", AssignedDate: ptr(ago(time.Hour)),
			SecurityLevel: model.SecurityConfidential},
		{ID: "doc-2", Title: "API Gateway Design", Description: "Routing and auth for the public API",
			Tags: []string{"architecture", "api"}, Department: "Engineering/Backend", Type: "Specification", FileType: "pdf", Size: 1_200_000,
			UploadedBy: "Tom Baker", UploadedAt: ago(3 * day),
			ApprovalStatus: model.StatusPending, AssignedTo: "mgr-2", AssignedDate: ptr(ago(2 * day)),
			SecurityLevel: model.SecurityRestricted},
		{ID: "doc-3", Title: "Employee Handbook 2024", Description: "Policies and benefits overview",
			Tags: []string{"policy", "onboarding"}, Department: "Human Resources", Type: "Policy", FileType: "docx", Size: 530_000,
			UploadedBy: "Priya Patel", UploadedAt: ago(20 * day),
			ApprovalStatus: model.StatusApproved, ApprovedBy: "Sarah Chen", ApprovedAt: ptr(ago(18 * day)),
			AssignedTo: "admin-1", AssignedDate: ptr(ago(19 * day)), PublishedAt: ptr(ago(17 * day))},
		{ID: "doc-4", Title: "Vendor Contract Renewal", Description: "Renewal terms for the hosting vendor",
			Tags: []string{"contract", "vendor"}, Department: "Legal", Type: "Contract", FileType: "pdf", Size: 310_000,
			UploadedBy: "James Wilson", UploadedAt: ago(40 * day),
			ApprovalStatus: model.StatusRejected, ApprovedBy: "Sarah Chen", ApprovedAt: ptr(ago(38 * day)),
			SecurityLevel: model.SecurityTopSecret},
		{ID: "doc-5", Title: "Design System Tokens", Description: "Color and spacing tokens for the web app",
			Tags: []string{"design", "frontend"}, Department: "Engineering/Frontend", Type: "Guide", FileType: "pdf", Size: 90_000,
			UploadedBy: "Tom Baker", UploadedAt: ago(5 * day),
			ApprovalStatus: model.StatusApproved, ApprovedBy: "James Wilson", ApprovedAt: ptr(ago(4 * day)),
			AssignedTo: "mgr-1", AssignedDate: ptr(ago(5 * day))},
		{ID: "doc-6", Title: "Incident Postmortem", Description: "Database failover incident",
			Tags: []string{"incident"}, Department: "Engineering/Backend", Type: "Report", FileType: "md", Size: 12_000,
			UploadedBy: "Tom Baker", UploadedAt: ago(200 * day),
			ApprovalStatus: model.StatusRevision, ApprovedBy: "Priya Patel", ApprovedAt: ptr(ago(199 * day)),
			AssignedTo: "mgr-2", AssignedDate: ptr(ago(200 * day))},
		{ID: "doc-7", Title: "Expense Policy (superseded)", Description: "Old travel expense rules",
			Tags: []string{"policy", "expenses"}, Department: "Finance", Type: "Policy", FileType: "docx", Size: 45_000,
			UploadedBy: "James Wilson", UploadedAt: ago(400 * day),
			ApprovalStatus: model.StatusApproved, ApprovedBy: "Sarah Chen", ApprovedAt: ptr(ago(398 * day)),
			IsDeleted: true},
		{ID: "doc-8", Title: "Security Awareness Training", Description: "Mandatory annual training",
			Tags: []string{"training", "security"}, Department: "Operations/IT", Type: "Guide", FileType: "pptx", Size: 2_400_000,
			UploadedBy: "Sarah Chen", UploadedAt: ago(10 * day),
			ApprovalStatus: model.StatusAcknowledged, ApprovedBy: "Tom Baker", ApprovedAt: ptr(ago(9 * day))},
	}
}
