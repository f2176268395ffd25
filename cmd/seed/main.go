package main

import (
	"log"
	"os"
	"time"

	"fleetrent-be/internal/model"
	"fleetrent-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Staff Accounts...")

	users := []model.User{
		{Email: "manager@fleetrent.local", FullName: "Fleet Manager", Role: "manager", Status: "active"},
		{Email: "employee@fleetrent.local", FullName: "Rental Agent", Role: "employee", Status: "active"},
	}

	for _, u := range users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("User '%s' already exists, skipping...", u.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing password: %v", err)
		}
		u.PasswordHash = string(hash)

		if err := db.Create(&u).Error; err != nil {
			log.Printf("Error creating user '%s': %v", u.Email, err)
		} else {
			log.Printf("Created user: %s (%s)", u.Email, u.Role)
		}
	}

	color.Cyan("Seeding Fleet...")

	vehicles := []model.Vehicle{
		{PlateNumber: "FLT-1001", Make: "Toyota", Model: "Corolla", Year: 2023, Status: "available", OdometerReading: 15200},
		{PlateNumber: "FLT-1002", Make: "Hyundai", Model: "Tucson", Year: 2024, Status: "available", OdometerReading: 8100},
		{PlateNumber: "FLT-1003", Make: "Kia", Model: "Sportage", Year: 2022, Status: "maintenance", OdometerReading: 43750},
	}

	for _, v := range vehicles {
		var existing model.Vehicle
		if err := db.Where("plate_number = ?", v.PlateNumber).First(&existing).Error; err == nil {
			log.Printf("Vehicle '%s' already exists, skipping...", v.PlateNumber)
			continue
		}

		if err := db.Create(&v).Error; err != nil {
			log.Printf("Error creating vehicle '%s': %v", v.PlateNumber, err)
		} else {
			log.Printf("Created vehicle: %s %s (%s)", v.Make, v.Model, v.PlateNumber)
		}
	}

	color.Cyan("Seeding Customers...")

	customers := []model.Customer{
		{FullName: "Ahmed Al-Rashid", Email: "ahmed@example.com", Phone: "+966500000001", NationalID: "1012345678"},
		{FullName: "Sara Haddad", Email: "sara@example.com", Phone: "+966500000002", NationalID: "1087654321"},
	}

	for _, c := range customers {
		var existing model.Customer
		if err := db.Where("national_id = ?", c.NationalID).First(&existing).Error; err == nil {
			log.Printf("Customer '%s' already exists, skipping...", c.FullName)
			continue
		}

		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating customer '%s': %v", c.FullName, err)
		} else {
			log.Printf("Created customer: %s", c.FullName)
		}
	}

	seedDemoContract(db)

	color.Green("✅ Seeding completed!")
}

// seedDemoContract links the first seeded employee, customer and vehicle into
// one active contract with an open invoice so the workflow can be exercised
// end to end on a fresh database.
func seedDemoContract(db *gorm.DB) {
	var employee model.User
	if err := db.Where("role = ?", "employee").First(&employee).Error; err != nil {
		log.Printf("Warn: No employee to attach demo contract to: %v", err)
		return
	}

	var customer model.Customer
	if err := db.Order("created_at asc").First(&customer).Error; err != nil {
		log.Printf("Warn: No customer to attach demo contract to: %v", err)
		return
	}

	var vehicle model.Vehicle
	if err := db.Where("status = ?", "available").First(&vehicle).Error; err != nil {
		log.Printf("Warn: No available vehicle for demo contract: %v", err)
		return
	}

	var existing model.Contract
	if err := db.Where("contract_number = ?", "CTR-DEMO-0001").First(&existing).Error; err == nil {
		log.Println("Demo contract already exists, skipping...")
		return
	}

	now := time.Now()
	contract := model.Contract{
		ContractNumber: "CTR-DEMO-0001",
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		EmployeeID:     employee.ID,
		StartDate:      now,
		EndDate:        now.AddDate(0, 1, 0),
		DailyRate:      180,
		TotalAmount:    5400,
		Status:         "active",
	}
	if err := db.Create(&contract).Error; err != nil {
		log.Printf("Error creating demo contract: %v", err)
		return
	}
	if err := db.Model(&model.Vehicle{}).Where("id = ?", vehicle.ID).Update("status", "rented").Error; err != nil {
		log.Printf("Error marking demo vehicle rented: %v", err)
	}

	dueDate := now.AddDate(0, 0, 14)
	invoice := model.Invoice{
		InvoiceNumber: "INV-DEMO-0001",
		ContractID:    contract.ID,
		CustomerID:    customer.ID,
		TotalAmount:   5400,
		PaidAmount:    1800,
		PaymentStatus: "partially_paid",
		InvoiceDate:   now,
		DueDate:       &dueDate,
	}
	if err := db.Create(&invoice).Error; err != nil {
		log.Printf("Error creating demo invoice: %v", err)
		return
	}

	log.Printf("Created demo contract %s with invoice %s", contract.ContractNumber, invoice.InvoiceNumber)
}
