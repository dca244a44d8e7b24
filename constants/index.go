package constants

const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	NOT_ADMIN                = "Bạn không có thẩm quyền"
	NOT_FOUND                = "Không tìm thấy dữ liệu"
	INVALID_DATE             = "Ngày không hợp lệ (định dạng YYYY-MM-DD)"
	INVALID_TIME             = "Giờ không hợp lệ (định dạng HH:MM)"
	LOGIN_FAILED             = "Sai tài khoản hoặc mật khẩu"
)

const (
	ROLE_ADMIN = "admin"
	ROLE_STAFF = "staff"
)
