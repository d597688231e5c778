package main

import (
	"log"
	"time"

	"meetspace/internal/database"
	"meetspace/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("meetspace.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Client{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@meetspace.com.br",
		PasswordHash: string(adminHash),
		Name:         "Recepção",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@meetspace.com.br / admin123")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Name: "Sala Térreo 1", Description: "Sala de reunião no térreo para até 8 pessoas", HourlyRate: 50, Capacity: 8, IsActive: true},
		{Name: "Sala Térreo 2", Description: "Sala de reunião no térreo com TV", HourlyRate: 50, Capacity: 8, IsActive: true},
		{Name: "Sala Térreo 3", Description: "Sala pequena para entrevistas", HourlyRate: 35, Capacity: 4, IsActive: true},
		{Name: "Sala Martinelli", Description: "Sala de treinamento com projetor", HourlyRate: 90, Capacity: 20, IsActive: true},
		{Name: "Salão Nobre", Description: "Auditório para eventos e palestras", HourlyRate: 200, Capacity: 120, IsActive: true},
		{Name: "Sala Anexo", Description: "Em reforma", HourlyRate: 40, Capacity: 6, IsActive: false},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	clients := []domain.Client{
		{Name: "Maria Souza", Phone: "+55 47 99911-0001", Email: "maria@souzaadv.com.br", Company: "Souza Advocacia"},
		{Name: "João Pereira", Phone: "+55 47 99911-0002", Email: "joao@terracon.com.br", Company: "Terracon Engenharia"},
		{Name: "Ana Lima", Phone: "+55 47 99911-0003", Email: "ana.lima@gmail.com"},
	}
	for i := range clients {
		db.Create(&clients[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hour, min int) time.Time {
		return today.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	bookings := []domain.Booking{
		// earlier this month, already settled
		{ClientID: clients[0].ID, RoomID: rooms[0].ID, StartTime: at(-10, 9, 0), EndTime: at(-10, 11, 0),
			Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid, TotalAmount: 100},
		{ClientID: clients[1].ID, RoomID: rooms[4].ID, StartTime: at(-5, 19, 0), EndTime: at(-5, 22, 0),
			Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid, TotalAmount: 600},
		// this week, for the display
		{ClientID: clients[0].ID, RoomID: rooms[0].ID, StartTime: at(0, 14, 0), EndTime: at(0, 15, 30),
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending, TotalAmount: 100},
		{ClientID: clients[2].ID, RoomID: rooms[3].ID, StartTime: at(1, 9, 0), EndTime: at(1, 12, 0),
			Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPartial, TotalAmount: 270},
		{ClientID: clients[1].ID, RoomID: rooms[1].ID, StartTime: at(3, 10, 0), EndTime: at(3, 11, 0),
			Status: domain.BookingPending, PaymentStatus: domain.PaymentPending, TotalAmount: 50},
		// cancelled bookings stay out of the agenda but keep history
		{ClientID: clients[2].ID, RoomID: rooms[2].ID, StartTime: at(2, 15, 0), EndTime: at(2, 16, 0),
			Status: domain.BookingCancelled, PaymentStatus: domain.PaymentRefunded, TotalAmount: 35},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	log.Println("Seed finished")
}
