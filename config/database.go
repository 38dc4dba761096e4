package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "hr-karyawan-db"
var EmployeeCollection string = "employees"
var TimeRecordCollection string = "time_records"
var PayrollCollection string = "payrolls"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING belum di setting di env. coba setting dulu")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

// InitDatabase membuat indeks yang dibutuhkan aplikasi:
//   - email karyawan unik,
//   - maksimal satu sesi absensi terbuka (clock_out masih null) per karyawan,
//   - pencarian payroll per karyawan per bulan.
//
// Indeks parsial pada time_records-lah yang menutup race clock-in ganda:
// dua insert sesi terbuka untuk karyawan yang sama akan bentrok di sini,
// bukan di pengecekan baca-lalu-tulis milik handler.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employeeIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(EmployeeCollection).Indexes().CreateOne(ctx, employeeIdx); err != nil {
		log.Fatalf("Gagal membuat indeks unik email: %v", err)
	}

	openSessionIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("one_open_session_per_employee").
			SetPartialFilterExpression(bson.M{"clock_out": bson.M{"$type": "null"}}),
	}
	if _, err := GetCollection(TimeRecordCollection).Indexes().CreateOne(ctx, openSessionIdx); err != nil {
		log.Fatalf("Gagal membuat indeks sesi terbuka: %v", err)
	}

	recordWindowIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: -1}},
	}
	if _, err := GetCollection(TimeRecordCollection).Indexes().CreateOne(ctx, recordWindowIdx); err != nil {
		log.Fatalf("Gagal membuat indeks employee+date: %v", err)
	}

	payrollIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "year", Value: -1}, {Key: "month", Value: 1}},
	}
	if _, err := GetCollection(PayrollCollection).Indexes().CreateOne(ctx, payrollIdx); err != nil {
		log.Fatalf("Gagal membuat indeks payroll: %v", err)
	}

	log.Println("Indeks database siap.")
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB untuk client tidak di inisialisasi. Panggil MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
