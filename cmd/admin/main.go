package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"samwad/backend/internal/config"
	"samwad/backend/internal/models"
	"samwad/backend/internal/storage"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	s := storage.NewService(db, nil) // no Redis needed for the admin CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "grievances":
		if err := listGrievances(s); err != nil {
			log.Fatalf("error listing grievances: %v", err)
		}
	case "resolve":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin resolve <grievance_id> [remark]")
			os.Exit(1)
		}
		remark := strings.Join(os.Args[3:], " ")
		if err := resolveGrievance(s, os.Args[2], remark); err != nil {
			log.Fatalf("error resolving grievance: %v", err)
		}
		fmt.Printf("Grievance %s resolved.\n", os.Args[2])
	case "export-sessions":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin export-sessions <file.csv> [district]")
			os.Exit(1)
		}
		district := ""
		if len(os.Args) > 3 {
			district = os.Args[3]
		}
		n, err := exportSessions(s, os.Args[2], district)
		if err != nil {
			log.Fatalf("error exporting sessions: %v", err)
		}
		fmt.Printf("Exported %d sessions to %s.\n", n, os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("  grievances                            list all grievances")
	fmt.Println("  resolve <id> [remark]                 mark a grievance resolved")
	fmt.Println("  export-sessions <file.csv> [district] export session history")
	os.Exit(1)
}

func listGrievances(s storage.Storage) error {
	grievances, err := s.GetAllGrievances()
	if err != nil {
		return err
	}
	for _, g := range grievances {
		fmt.Printf("%s  [%s]  %s (%s)  %s\n",
			g.Timestamp.Format("2006-01-02 15:04"), g.Status, g.CitizenName, g.CitizenMobile, g.Message)
	}
	fmt.Printf("%d grievances.\n", len(grievances))
	return nil
}

func resolveGrievance(s storage.Storage, id, remark string) error {
	status := models.GrievanceStatusResolved
	var remarkPtr *string
	if remark != "" {
		remarkPtr = &remark
	}
	return s.UpdateGrievance(id, remarkPtr, &status)
}

func exportSessions(s storage.Storage, path, district string) (int, error) {
	sessions, err := s.GetSessionsByLocation(district, "", "")
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"session_id", "citizen_name", "citizen_mobile", "district", "block", "village",
		"ended_at", "messages", "citizen_rating", "dm_rating"}
	if err := w.Write(header); err != nil {
		return 0, err
	}
	for _, rec := range sessions {
		row := []string{
			rec.SessionID, rec.CitizenName, rec.CitizenMobile,
			rec.District, rec.Block, rec.Village,
			rec.EndTime.Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(rec.Messages)),
			ratingString(rec.CitizenRating),
			ratingString(rec.DMRating),
		}
		if err := w.Write(row); err != nil {
			return 0, err
		}
	}
	return len(sessions), w.Error()
}

func ratingString(r *int) string {
	if r == nil {
		return ""
	}
	return strconv.Itoa(*r)
}
