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
)

type PayrollRepository interface {
	CreatePayroll(ctx context.Context, payroll *models.Payroll) (*mongo.InsertOneResult, error)
	FindLatestByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*models.Payroll, error)
	FindPayrollByID(ctx context.Context, id primitive.ObjectID) (*models.Payroll, error)
	GetAllPayrolls(ctx context.Context, page, limit int64) ([]models.Payroll, int64, error)
	UpdatePayroll(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*models.Payroll, error)
}

type payrollRepository struct {
	collection *mongo.Collection
}

func NewPayrollRepository() PayrollRepository {
	return &payrollRepository{
		collection: config.GetCollection(config.PayrollCollection),
	}
}

func (r *payrollRepository) CreatePayroll(ctx context.Context, payroll *models.Payroll) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, payroll)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat record payroll: %w", err)
	}
	return res, nil
}

func (r *payrollRepository) FindLatestByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*models.Payroll, error) {
	var payroll models.Payroll
	filter := bson.M{"employee_id": employeeID}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&payroll)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPayrollNotFound
		}
		return nil, fmt.Errorf("gagal mencari payroll karyawan: %w", err)
	}
	return &payroll, nil
}

func (r *payrollRepository) FindPayrollByID(ctx context.Context, id primitive.ObjectID) (*models.Payroll, error) {
	var payroll models.Payroll

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payroll)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPayrollNotFound
		}
		return nil, fmt.Errorf("gagal mencari payroll: %w", err)
	}
	return &payroll, nil
}

func (r *payrollRepository) GetAllPayrolls(ctx context.Context, page, limit int64) ([]models.Payroll, int64, error) {
	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal mengambil daftar payroll: %w", err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.Payroll
	if err = cursor.All(ctx, &payrolls); err != nil {
		return nil, 0, fmt.Errorf("gagal decode daftar payroll: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung payroll: %w", err)
	}

	if len(payrolls) == 0 {
		return []models.Payroll{}, total, nil
	}
	return payrolls, total, nil
}

func (r *payrollRepository) UpdatePayroll(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*models.Payroll, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Payroll
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPayrollNotFound
		}
		return nil, fmt.Errorf("gagal mengupdate payroll: %w", err)
	}
	return &updated, nil
}
