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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()
	employee.Active = true

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("gagal membuat karyawan: %w", err)
	}
	return result, nil
}

func (r *EmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan karyawan berdasarkan email: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan karyawan berdasarkan ID: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate karyawan: %w", err)
	}
	return result, nil
}

// GetAllEmployees mengambil daftar karyawan tanpa field password.
func (r *EmployeeRepository) GetAllEmployees(ctx context.Context, filter bson.M, page, limit int64) ([]models.Employee, int64, error) {
	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetProjection(bson.M{"password": 0})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan karyawan: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode karyawan: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung karyawan: %w", err)
	}

	return employees, total, nil
}

func (r *EmployeeRepository) UpdateEmployeePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"password":   hashedPassword,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate password karyawan: %w", err)
	}
	return nil
}
