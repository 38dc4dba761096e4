package models

type RegisterSuccessResponse struct {
	Message    string `json:"message" example:"Karyawan berhasil didaftarkan"`
	Token      string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	EmployeeID string `json:"employee_id" example:"507f1f77bcf86cd799439011"`
}

type LoginSuccessResponse struct {
	Message string   `json:"message" example:"Login berhasil"`
	Token   string   `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	Emp     Employee `json:"employee"`
}

type LogoutSuccessResponse struct {
	Message string `json:"message" example:"Logout berhasil. Silakan hapus token dari sisi client."`
}

type ChangePasswordSuccessResponse struct {
	Message string `json:"message" example:"Password berhasil diubah."`
}

type GetAllEmployeesSuccessResponse struct {
	Message   string     `json:"message" example:"Data karyawan berhasil diambil"`
	Employees []Employee `json:"employees"`
	Total     int        `json:"total" example:"10"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses admin diperlukan"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Catatan absensi tidak ditemukan"`
}
