package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-HR-Karyawan/config"
	"Sistem-HR-Karyawan/models"
	"Sistem-HR-Karyawan/pkg/worktime"
)

// reportLimit adalah batas jumlah record yang diambil untuk laporan:
// 100 record terbaru, bukan 100 hari.
const reportLimit = 100

type AttendanceRepository interface {
	CreateTimeRecord(ctx context.Context, record *models.TimeRecord) (*mongo.InsertOneResult, error)
	FindOpenSession(ctx context.Context, employeeID primitive.ObjectID, start, end time.Time) (*models.TimeRecord, error)
	CountSessionsInWindow(ctx context.Context, employeeID primitive.ObjectID, start, end time.Time) (int64, error)
	FindByIDAndEmployee(ctx context.Context, id, employeeID primitive.ObjectID) (*models.TimeRecord, error)
	CloseTimeRecord(ctx context.Context, id primitive.ObjectID, clockOut time.Time, derived worktime.Derived) (*models.TimeRecord, error)
	FindByEmployee(ctx context.Context, employeeID primitive.ObjectID, startDate, endDate *time.Time) ([]models.TimeRecord, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		collection: config.GetCollection(config.TimeRecordCollection),
	}
}

// CreateTimeRecord menyimpan sesi terbuka baru. Indeks parsial
// one_open_session_per_employee membuat insert kedua untuk karyawan yang
// masih punya sesi terbuka gagal dengan duplicate key; itu dipetakan ke
// ErrOpenSessionExists sehingga race check-then-act di handler tertutup
// di level database.
func (r *attendanceRepository) CreateTimeRecord(ctx context.Context, record *models.TimeRecord) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrOpenSessionExists
		}
		return nil, fmt.Errorf("gagal menyimpan sesi absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindOpenSession(ctx context.Context, employeeID primitive.ObjectID, start, end time.Time) (*models.TimeRecord, error) {
	var record models.TimeRecord
	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": start, "$lte": end},
		"clock_out":   nil,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari sesi terbuka: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) CountSessionsInWindow(ctx context.Context, employeeID primitive.ObjectID, start, end time.Time) (int64, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": start, "$lte": end},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung sesi hari ini: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) FindByIDAndEmployee(ctx context.Context, id, employeeID primitive.ObjectID) (*models.TimeRecord, error) {
	var record models.TimeRecord
	filter := bson.M{"_id": id, "employee_id": employeeID}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("gagal mencari catatan absensi: %w", err)
	}
	return &record, nil
}

// CloseTimeRecord menutup sesi dan mengisi field turunan dalam satu update
// kondisional: filter clock_out == null memastikan sesi yang sudah tertutup
// tidak pernah dihitung ulang, juga saat dua clock-out balapan.
func (r *attendanceRepository) CloseTimeRecord(ctx context.Context, id primitive.ObjectID, clockOut time.Time, derived worktime.Derived) (*models.TimeRecord, error) {
	filter := bson.M{"_id": id, "clock_out": nil}
	update := bson.M{
		"$set": bson.M{
			"clock_out":          clockOut,
			"gross_hours":        derived.GrossHours,
			"effective_hours":    derived.EffectiveHours,
			"overtime_hours":     derived.OvertimeHours,
			"is_on_time":         derived.IsOnTime,
			"is_late_arrival":    derived.IsLateArrival,
			"is_early_departure": derived.IsEarlyDeparture,
			"updated_at":         time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.TimeRecord
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAlreadyClosed
		}
		return nil, fmt.Errorf("gagal menutup sesi absensi: %w", err)
	}
	return &updated, nil
}

// FindByEmployee mengambil record milik satu karyawan, opsional dibatasi
// rentang tanggal inklusif, diurutkan date menurun lalu clock_in menurun,
// maksimal 100 record.
func (r *attendanceRepository) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID, startDate, endDate *time.Time) ([]models.TimeRecord, error) {
	filter := bson.M{"employee_id": employeeID}
	if startDate != nil && endDate != nil {
		filter["date"] = bson.M{"$gte": *startDate, "$lte": *endDate}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "clock_in", Value: -1}}).
		SetLimit(reportLimit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil riwayat absensi: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.TimeRecord
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.TimeRecord{}, nil
	}
	return results, nil
}
