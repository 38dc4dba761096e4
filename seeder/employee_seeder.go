package seeder

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Sistem-HR-Karyawan/models"
	"Sistem-HR-Karyawan/repository"
)

// SeedAdmin menambahkan satu akun admin kalau belum ada. Dipanggil dari
// main saat SEED_ADMIN=true; aman dijalankan berulang.
func SeedAdmin(employeeRepo *repository.EmployeeRepository) {
	log.Println("Memulai seeding admin...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminEmail := "admin.utama@example.com"
	existing, err := employeeRepo.FindEmployeeByEmail(ctx, adminEmail)
	if err == nil && existing != nil {
		log.Println("Akun admin sudah ada, seeding dilewati.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Gagal hash password admin: %v", err)
	}

	newAdmin := &models.Employee{
		Name:        "Admin",
		LastName:    "Utama",
		Email:       adminEmail,
		Password:    string(hashedPassword),
		Role:        "admin",
		Position:    "Manager",
		Department:  "Manajemen",
		Manager:     "-",
		JobTitle:    "HR Administrator",
		JobCategory: "Management",
		Salary:      9500000.00,
	}

	if _, err := employeeRepo.CreateEmployee(ctx, newAdmin); err != nil {
		log.Printf("Gagal menyimpan akun admin: %v", err)
		return
	}

	log.Printf("Akun admin (%s) berhasil ditambahkan.", newAdmin.Email)
}
