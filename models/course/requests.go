package course

// SubLessonInput is one sub-lesson entry as submitted by the lesson editor.
// Order is taken from array position, never from the payload.
type SubLessonInput struct {
	Title        string `json:"title"`
	VideoURL     string `json:"video_url"`
	VideoAssetID string `json:"video_asset_id"`
}

// LessonCreateRequest creates one module plus its sub-lessons in one call
type LessonCreateRequest struct {
	CourseID    uint             `json:"courseId"`
	LessonTitle string           `json:"lessonTitle"`
	SubLessons  []SubLessonInput `json:"subLessons"`
}

// LessonUpdateRequest replaces a module's title and full sub-lesson set.
// CourseID is optional; when present it must match the module's owning course.
type LessonUpdateRequest struct {
	CourseID    uint             `json:"courseId"`
	LessonTitle string           `json:"lessonTitle"`
	SubLessons  []SubLessonInput `json:"subLessons"`
}

// OrderEntry is one row position in a bulk reorder
type OrderEntry struct {
	ID         uint `json:"id"`
	OrderIndex int  `json:"order_index"`
}

// LessonReorderRequest repositions modules within a course
type LessonReorderRequest struct {
	CourseID     uint         `json:"courseId"`
	LessonOrders []OrderEntry `json:"lessonOrders"`
}

// SubLessonReorderRequest repositions sub-lessons within a module
type SubLessonReorderRequest struct {
	ModuleID        uint         `json:"moduleId"`
	SubLessonOrders []OrderEntry `json:"subLessonOrders"`
}
