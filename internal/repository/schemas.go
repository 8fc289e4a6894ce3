package repository

import (
	"mis/pkg/query"
)

// Entity names, also used as audit entities and websocket event subjects
const (
	EntityUsers         = "users"
	EntityProjects      = "projects"
	EntityOutputs       = "outputs"
	EntityActivities    = "activities"
	EntitySubActivities = "subActivities"
	EntityTrackingRows  = "rows"
	EntityDocuments     = "documents"
	EntityPictures      = "pictures"
	EntityReports       = "reports"
	EntityLinks         = "links"
)

var mediaColumns = []Column{
	{Key: "fileName", Name: "file_name"},
	{Key: "originalName", Name: "original_name"},
	{Key: "filePath", Name: "file_path"},
	{Key: "fileSizeKB", Name: "file_size_kb", Kind: Int},
	{Key: "contentType", Name: "content_type"},
}

func withMedia(cols ...Column) []Column {
	return append(cols, mediaColumns...)
}

var UserSchema = Schema{
	Entity: EntityUsers,
	Table:  "users",
	ID:     Column{Key: "username", Name: "username"},
	Columns: []Column{
		{Key: "email", Name: "email"},
		{Key: "name", Name: "name"},
		{Key: "department", Name: "department"},
		{Key: "region", Name: "region"},
		{Key: "contact", Name: "contact"},
		{Key: "level", Name: "level"},
		{Key: "canAdd", Name: "can_add", Kind: Bool},
		{Key: "canEdit", Name: "can_edit", Kind: Bool},
		{Key: "canDelete", Name: "can_delete", Kind: Bool},
		{Key: "canViewReports", Name: "can_view_reports", Kind: Bool},
		{Key: "createdAt", Name: "created_at", ReadOnly: true},
		{Key: "updatedAt", Name: "updated_at", ReadOnly: true},
	},
	OrderBy: "username ASC",
	Limit:   200,
	Filters: []Filter{
		Eq("department", "department"),
		Eq("region", "region"),
		Eq("level", "level"),
		Search("search", "username", "name", "email"),
	},
}

var ProjectSchema = Schema{
	Entity: EntityProjects,
	Table:  "projects",
	ID:     Column{Key: "id", Name: "id", Kind: Int, ReadOnly: true},
	Columns: []Column{
		{Key: "projectName", Name: "project_name"},
		{Key: "donor", Name: "donor"},
		{Key: "region", Name: "region"},
		{Key: "department", Name: "department"},
		{Key: "mainCategory", Name: "main_category"},
		{Key: "subCategory", Name: "sub_category"},
		{Key: "status", Name: "status"},
		{Key: "description", Name: "description"},
		{Key: "budget", Name: "budget", Kind: Decimal},
		{Key: "startDate", Name: "start_date", Kind: Date},
		{Key: "endDate", Name: "end_date", Kind: Date},
	},
	Required:       []string{"projectName", "mainCategory"},
	UpdateRequired: []string{"projectName"},
	OrderBy:        "id DESC",
	Limit:          100,
	Filters: []Filter{
		Eq("mainCategory", "main_category"),
		Eq("subCategory", "sub_category"),
		Eq("region", "region"),
		Eq("status", "status"),
		Search("search", "project_name", "donor", "description"),
	},
	Audited: true,
}

var OutputSchema = Schema{
	Entity: EntityOutputs,
	Table:  "tracking_outputs",
	ID:     Column{Key: "outputId", Name: "output_id"},
	Columns: []Column{
		{Key: "outputName", Name: "output_name"},
		{Key: "description", Name: "description"},
	},
	Required:       []string{"outputId", "outputName"},
	UpdateRequired: []string{"outputName"},
	OrderBy:        "output_id ASC",
	Limit:          500,
	Filters: []Filter{
		Search("search", "output_name", "description"),
	},
	Audited: true,
}

var ActivitySchema = Schema{
	Entity: EntityActivities,
	Table:  "tracking_activities",
	ID:     Column{Key: "activityId", Name: "activity_id"},
	Columns: []Column{
		{Key: "outputId", Name: "output_id"},
		{Key: "activityName", Name: "activity_name"},
	},
	Required:       []string{"activityId", "outputId", "activityName"},
	UpdateRequired: []string{"activityName"},
	OrderBy:        "activity_id ASC",
	Limit:          500,
	Filters: []Filter{
		Eq("outputId", "output_id"),
		Search("search", "activity_name"),
	},
	Audited: true,
}

var SubActivitySchema = Schema{
	Entity: EntitySubActivities,
	Table:  "tracking_sub_activities",
	ID:     Column{Key: "subActivityId", Name: "sub_activity_id"},
	Columns: []Column{
		{Key: "activityId", Name: "activity_id"},
		{Key: "subActivityName", Name: "sub_activity_name"},
	},
	Required:       []string{"subActivityId", "activityId", "subActivityName"},
	UpdateRequired: []string{"subActivityName"},
	OrderBy:        "sub_activity_id ASC",
	Limit:          500,
	Filters: []Filter{
		Eq("activityId", "activity_id"),
		Search("search", "sub_activity_name"),
	},
	Audited: true,
}

var TrackingRowSchema = Schema{
	Entity: EntityTrackingRows,
	Table:  "tracking_sheet",
	ID:     Column{Key: "subSubActivityId", Name: "sub_sub_activity_id"},
	Columns: []Column{
		{Key: "subActivityId", Name: "sub_activity_id"},
		{Key: "description", Name: "description"},
		{Key: "indicator", Name: "indicator"},
		{Key: "unit", Name: "unit"},
		{Key: "target", Name: "target", Kind: Int},
		{Key: "achieved", Name: "achieved", Kind: Int},
		{Key: "budget", Name: "budget", Kind: Decimal},
		{Key: "expenditure", Name: "expenditure", Kind: Decimal},
		{Key: "province", Name: "province"},
		{Key: "district", Name: "district"},
		{Key: "startDate", Name: "start_date", Kind: Date},
		{Key: "endDate", Name: "end_date", Kind: Date},
		{Key: "status", Name: "status"},
		{Key: "remarks", Name: "remarks"},
	},
	Required:       []string{"subSubActivityId", "subActivityId", "description"},
	UpdateRequired: []string{"description"},
	OrderBy:        "sub_sub_activity_id ASC",
	Limit:          1000,
	Filters: []Filter{
		{Param: "outputId", Apply: func(b *query.Builder, v string) {
			b.And(`sub_activity_id IN (SELECT sa.sub_activity_id FROM tracking_sub_activities sa
				JOIN tracking_activities a ON a.activity_id = sa.activity_id WHERE a.output_id = ?)`, v)
		}},
		{Param: "activityId", Apply: func(b *query.Builder, v string) {
			b.And("sub_activity_id IN (SELECT sub_activity_id FROM tracking_sub_activities WHERE activity_id = ?)", v)
		}},
		Eq("subActivityId", "sub_activity_id"),
		Eq("status", "status"),
		Eq("province", "province"),
		Search("search", "description", "indicator", "remarks"),
	},
	Audited: true,
}

var DocumentSchema = Schema{
	Entity: EntityDocuments,
	Table:  "documents",
	ID:     Column{Key: "id", Name: "id", Kind: Int, ReadOnly: true},
	Columns: withMedia(
		Column{Key: "title", Name: "title"},
		Column{Key: "mainCategory", Name: "main_category"},
		Column{Key: "subCategory", Name: "sub_category"},
		Column{Key: "groupName", Name: "group_name"},
		Column{Key: "description", Name: "description"},
		Column{Key: "documentDate", Name: "document_date", Kind: Date},
		Column{Key: "uploadedBy", Name: "uploaded_by"},
	),
	Required: []string{"title", "mainCategory"},
	OrderBy:  "created_at DESC",
	Limit:    200,
	Filters: []Filter{
		Eq("mainCategory", "main_category"),
		Eq("subCategory", "sub_category"),
		Search("search", "title", "description"),
	},
	Audited: true,
}

var PictureSchema = Schema{
	Entity: EntityPictures,
	Table:  "pictures",
	ID:     Column{Key: "id", Name: "id", Kind: Int, ReadOnly: true},
	Columns: withMedia(
		Column{Key: "mainCategory", Name: "main_category"},
		Column{Key: "subCategory", Name: "sub_category"},
		Column{Key: "groupName", Name: "group_name"},
		Column{Key: "eventDate", Name: "event_date", Kind: Date},
		Column{Key: "uploadedBy", Name: "uploaded_by"},
	),
	Required: []string{"mainCategory", "subCategory", "groupName", "eventDate", "uploadedBy", "filePath"},
	OrderBy:  "event_date DESC, id DESC",
	Limit:    200,
	Filters: []Filter{
		Eq("mainCategory", "main_category"),
		Eq("subCategory", "sub_category"),
		Eq("groupName", "group_name"),
		Search("search", "group_name", "original_name"),
	},
	Audited: true,
}

var ReportSchema = Schema{
	Entity: EntityReports,
	Table:  "reports",
	ID:     Column{Key: "id", Name: "id", Kind: Int, ReadOnly: true},
	Columns: withMedia(
		Column{Key: "title", Name: "title"},
		Column{Key: "mainCategory", Name: "main_category"},
		Column{Key: "subCategory", Name: "sub_category"},
		Column{Key: "groupName", Name: "group_name"},
		Column{Key: "reportDate", Name: "report_date", Kind: Date},
		Column{Key: "uploadedBy", Name: "uploaded_by"},
	),
	Required: []string{"mainCategory", "subCategory", "groupName", "reportDate", "uploadedBy", "filePath"},
	OrderBy:  "report_date DESC, id DESC",
	Limit:    200,
	Filters: []Filter{
		Eq("mainCategory", "main_category"),
		Eq("subCategory", "sub_category"),
		Eq("groupName", "group_name"),
		Search("search", "title", "group_name", "original_name"),
	},
	Audited: true,
}

var LinkSchema = Schema{
	Entity: EntityLinks,
	Table:  "links",
	ID:     Column{Key: "id", Name: "id", Kind: Int, ReadOnly: true},
	Columns: []Column{
		{Key: "title", Name: "title"},
		{Key: "url", Name: "url"},
		{Key: "mainCategory", Name: "main_category"},
		{Key: "subCategory", Name: "sub_category"},
		{Key: "description", Name: "description"},
	},
	Required: []string{"title", "url"},
	OrderBy:  "id DESC",
	Limit:    200,
	Filters: []Filter{
		Eq("mainCategory", "main_category"),
		Eq("subCategory", "sub_category"),
		Search("search", "title", "description", "url"),
	},
	Audited: true,
}
