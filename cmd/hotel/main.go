package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/vishnupriyaraya/hotel-reservation/config"
	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
	"github.com/vishnupriyaraya/hotel-reservation/internal/clock"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
	"github.com/vishnupriyaraya/hotel-reservation/internal/storage/postgres"
	"github.com/vishnupriyaraya/hotel-reservation/migrations"
)

// The console front end takes dates as DD-MM-YYYY.
const consoleDateLayout = "02-01-2006"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: failed to load .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ApplyEnv()

	ctx := context.Background()

	startupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	cli := &console{
		booking: app.NewBookingService(postgres.NewBookingRepository(pool), clock.NewSystem()),
		catalog: app.NewCatalogService(postgres.NewCatalogRepository(pool)),
		report:  app.NewReportService(postgres.NewReportRepository(pool)),
		in:      bufio.NewScanner(os.Stdin),
	}
	cli.run(ctx)
}

type console struct {
	booking *app.BookingService
	catalog *app.CatalogService
	report  *app.ReportService
	in      *bufio.Scanner
}

func (c *console) run(ctx context.Context) {
	for {
		fmt.Println("\n===== Hotel Reservation System =====")
		fmt.Println("1. Check Room Availability by Dates")
		fmt.Println("2. View Available Rooms")
		fmt.Println("3. Book a Room")
		fmt.Println("4. Cancel Reservation")
		fmt.Println("5. View All Bookings")
		fmt.Println("6. View Room Schedule (all bookings)")
		fmt.Println("0. Exit")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.checkAvailability(ctx)
		case "2":
			c.viewAvailableRooms(ctx)
		case "3":
			c.bookRoom(ctx)
		case "4":
			c.cancelReservation(ctx)
		case "5":
			c.viewAllBookings(ctx)
		case "6":
			c.viewRoomSchedule(ctx)
		case "0":
			fmt.Println("Thank you for choosing our Hotel Reservation System. Have a great day!")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

// prompt reads one trimmed line; ok is false once stdin is closed.
func (c *console) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *console) promptDates() (checkIn, checkOut time.Time, ok bool) {
	raw, ok := c.prompt("Check-in date (DD-MM-YYYY): ")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	checkIn, err := time.Parse(consoleDateLayout, raw)
	if err != nil {
		fmt.Println("Invalid date format.")
		return time.Time{}, time.Time{}, false
	}

	raw, ok = c.prompt("Check-out date (DD-MM-YYYY): ")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	checkOut, err = time.Parse(consoleDateLayout, raw)
	if err != nil {
		fmt.Println("Invalid date format.")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func (c *console) checkAvailability(ctx context.Context) {
	checkIn, checkOut, ok := c.promptDates()
	if !ok {
		return
	}

	result, err := c.catalog.CheckAvailability(ctx, checkIn, checkOut)
	if err != nil {
		printDomainError(err)
		return
	}

	free := 0
	fmt.Printf("\nRooms for %s to %s:\n", formatConsoleDate(checkIn), formatConsoleDate(checkOut))
	for _, ra := range result {
		verdict := "BOOKED"
		if ra.Free {
			verdict = "FREE"
			free++
		}
		fmt.Printf("Room %d | %-8s | Rs.%.2f | %s\n", ra.Room.ID, ra.Room.Type, ra.Room.Price, verdict)
	}
	if free == 0 {
		fmt.Println("No rooms free for those dates.")
	}
}

func (c *console) viewAvailableRooms(ctx context.Context) {
	rooms, err := c.catalog.ListAvailableRooms(ctx)
	if err != nil {
		printDomainError(err)
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No rooms available.")
		return
	}
	fmt.Println("Room ID | Type | Price | Availability")
	for _, room := range rooms {
		fmt.Printf("%d | %s | Rs.%.2f | Available\n", room.ID, room.Type, room.Price)
	}
}

func (c *console) bookRoom(ctx context.Context) {
	name, ok := c.prompt("Enter your name: ")
	if !ok {
		return
	}

	rawID, ok := c.prompt("Enter Room ID to book: ")
	if !ok {
		return
	}
	roomID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("Invalid input. Please check room ID and date format.")
		return
	}

	checkIn, checkOut, ok := c.promptDates()
	if !ok {
		return
	}

	res, err := c.booking.Book(ctx, app.BookInput{
		CustomerName: name,
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	})
	if err != nil {
		printDomainError(err)
		return
	}

	fmt.Println("\n======= Booking Receipt =======")
	fmt.Printf("Reservation: %d\n", res.ID)
	fmt.Printf("Customer:   %s\n", res.CustomerName)
	fmt.Printf("Room ID:    %d\n", res.RoomID)
	fmt.Printf("Check-in:   %s\n", formatConsoleDate(res.CheckIn))
	fmt.Printf("Check-out:  %s\n", formatConsoleDate(res.CheckOut))
	fmt.Printf("Total Cost: Rs.%.2f\n", res.TotalCost)
	fmt.Printf("Status:     %s\n", res.Status)
	fmt.Printf("Payment:    %s\n", res.PaymentStatus)
	fmt.Println("===============================")
}

func (c *console) cancelReservation(ctx context.Context) {
	raw, ok := c.prompt("Enter Reservation ID to cancel: ")
	if !ok {
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid reservation ID.")
		return
	}

	if err := c.booking.Cancel(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			fmt.Println("Cancellation failed or already cancelled.")
			return
		}
		printDomainError(err)
		return
	}
	fmt.Println("Reservation cancelled.")
}

func (c *console) viewAllBookings(ctx context.Context) {
	reservations, err := c.report.ListReservations(ctx)
	if err != nil {
		printDomainError(err)
		return
	}
	if len(reservations) == 0 {
		fmt.Println("No bookings found.")
		return
	}
	for _, res := range reservations {
		printReservation(res)
	}
}

func (c *console) viewRoomSchedule(ctx context.Context) {
	schedule, err := c.report.RoomSchedule(ctx)
	if err != nil {
		printDomainError(err)
		return
	}
	for _, entry := range schedule {
		fmt.Printf("\nRoom %d (%s, Rs.%.2f):\n", entry.Room.ID, entry.Room.Type, entry.Room.Price)
		if len(entry.Reservations) == 0 {
			fmt.Println("  no bookings")
			continue
		}
		for _, res := range entry.Reservations {
			fmt.Printf("  #%d %s %s to %s [%s]\n",
				res.ID, res.CustomerName,
				formatConsoleDate(res.CheckIn), formatConsoleDate(res.CheckOut),
				res.Status)
		}
	}
}

func printReservation(res domain.Reservation) {
	fmt.Printf("Reservation %d | %s | Room %d | %s to %s | Rs.%.2f | %s | %s\n",
		res.ID, res.CustomerName, res.RoomID,
		formatConsoleDate(res.CheckIn), formatConsoleDate(res.CheckOut),
		res.TotalCost, res.Status, res.PaymentStatus)
}

func printDomainError(err error) {
	switch {
	case errors.Is(err, domain.ErrDatesUnavailable):
		fmt.Println("Booking failed. Try different room/date.")
	case errors.Is(err, domain.ErrInvalidStay):
		fmt.Println("Check-out must be after check-in.")
	case errors.Is(err, domain.ErrRoomNotFound):
		fmt.Println("No such room.")
	case errors.Is(err, domain.ErrReservationNotFound):
		fmt.Println("No such reservation.")
	case errors.Is(err, domain.ErrCustomerNameRequired):
		fmt.Println("Name is required.")
	case errors.Is(err, domain.ErrInvalidID):
		fmt.Println("Invalid ID.")
	default:
		fmt.Printf("Something went wrong: %v\n", err)
	}
}

func formatConsoleDate(t time.Time) string {
	return t.Format(consoleDateLayout)
}
