package main

import (
	"coursehub/config"
	"coursehub/database"
	courseModels "coursehub/models/course"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("CourseCatalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		course := courseModels.Course{
			Title:         getField(row, headerIndex, "title"),
			Description:   getField(row, headerIndex, "description"),
			Summary:       getField(row, headerIndex, "summary"),
			Category:      getField(row, headerIndex, "category"),
			Instructor:    getField(row, headerIndex, "instructor"),
			Price:         parseFloat(getField(row, headerIndex, "price")),
			Currency:      getField(row, headerIndex, "currency"),
			DurationHours: int64(parseInt(getField(row, headerIndex, "duration_hours"))),
			ThumbnailURL:  getField(row, headerIndex, "thumbnail_url"),
			Status:        "DRAFT",
			IsDeleted:     false,
		}

		if course.Currency == "" {
			course.Currency = "INR"
		}

		// Skip if no title or instructor
		if course.Title == "" || course.Instructor == "" {
			skipped++
			continue
		}

		// Check if course exists by title and instructor
		var existing courseModels.Course
		result := database.Database.Db.
			Where("title = ? AND instructor = ? AND is_deleted = ?", course.Title, course.Instructor, false).
			First(&existing)

		if result.Error != nil {
			// Insert new course as an unpublished draft
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s: %v", course.Title, err)
				continue
			}
			inserted++
		} else {
			// Update existing course; publish state is left alone
			existing.Description = course.Description
			existing.Summary = course.Summary
			existing.Category = course.Category
			existing.Price = course.Price
			existing.Currency = course.Currency
			existing.DurationHours = course.DurationHours
			existing.ThumbnailURL = course.ThumbnailURL

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s: %v", course.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
