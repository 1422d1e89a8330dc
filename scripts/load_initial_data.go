package main

import (
	"design-studio-backend/internal/config"
	"design-studio-backend/internal/database"
	"design-studio-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProjectData struct {
	Name          string `yaml:"name"`
	ClientName    string `yaml:"client_name"`
	Address       string `yaml:"address,omitempty"`
	CoverImageURL string `yaml:"cover_image_url,omitempty"`
	Status        string `yaml:"status,omitempty"`
	Notes         string `yaml:"notes,omitempty"`
}

type SectionData struct {
	Name        string `yaml:"name"`
	ProjectName string `yaml:"project_name"`
}

type RoomData struct {
	ProjectName string `yaml:"project_name"`
	SectionName string `yaml:"section_name,omitempty"`
	RoomType    string `yaml:"room_type"`
	CustomName  string `yaml:"custom_name,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type ContractorData struct {
	Name         string   `yaml:"name"`
	Trade        string   `yaml:"trade"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone,omitempty"`
	ProjectNames []string `yaml:"project_names,omitempty"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type SectionsFile struct {
	Sections []SectionData `yaml:"sections"`
}

type RoomsFile struct {
	Rooms []RoomData `yaml:"rooms"`
}

type ContractorsFile struct {
	Contractors []ContractorData `yaml:"contractors"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	sections, err := loadSections(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sections: %w", err)
	}

	rooms, err := loadRooms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	contractors, err := loadContractors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contractors: %w", err)
	}

	// Create projects first
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		projectMap[projectData.Name] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	// Create sections
	sectionMap := make(map[string]*models.Section)
	sectionCreated := 0
	for _, sectionData := range sections {
		section, created, err := createSection(db, sectionData, projectMap)
		if err != nil {
			return fmt.Errorf("failed to create section %s: %w", sectionData.Name, err)
		}
		sectionMap[sectionData.ProjectName+"/"+sectionData.Name] = section
		if created {
			sectionCreated++
		}
	}
	log.Printf("Sections: %d created, %d total", sectionCreated, len(sections))

	// Create rooms, appending each to the end of its destination bucket
	roomCreated := 0
	for _, roomData := range rooms {
		created, err := createRoom(db, roomData, projectMap, sectionMap)
		if err != nil {
			log.Printf("Warning: failed to create room %s/%s: %v", roomData.ProjectName, roomData.RoomType, err)
			continue // Continue with other rooms
		}
		if created {
			roomCreated++
		}
	}
	log.Printf("Rooms: %d created, %d total", roomCreated, len(rooms))

	// Create contractors and their project assignments
	contractorCreated := 0
	assignmentsCreated := 0
	for _, contractorData := range contractors {
		contractor, created, err := createContractor(db, contractorData)
		if err != nil {
			log.Printf("Warning: failed to create contractor %s: %v", contractorData.Name, err)
			continue // Continue with other contractors
		}
		if created {
			contractorCreated++
		}
		assignmentsCreated += assignContractor(db, contractor, contractorData.ProjectNames, projectMap)
	}
	log.Printf("Contractors: %d created, %d total", contractorCreated, len(contractors))
	log.Printf("Contractor assignments: %d created", assignmentsCreated)

	return nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadSections(dataDir string) ([]SectionData, error) {
	var allSections []SectionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "sections") {
			var file SectionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSections = append(allSections, file.Sections...)
		}
		return nil
	})

	return allSections, err
}

func loadRooms(dataDir string) ([]RoomData, error) {
	var allRooms []RoomData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "rooms") {
			var file RoomsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRooms = append(allRooms, file.Rooms...)
		}
		return nil
	})

	return allRooms, err
}

func loadContractors(dataDir string) ([]ContractorData, error) {
	var allContractors []ContractorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contractors") {
			var file ContractorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allContractors = append(allContractors, file.Contractors...)
		}
		return nil
	})

	return allContractors, err
}

func createProject(db *gorm.DB, projectData ProjectData) (*models.Project, bool, error) {
	var project models.Project
	if err := db.Where("name = ?", projectData.Name).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ProjectStatusActive
			if projectData.Status != "" {
				status = models.ProjectStatus(projectData.Status)
			}

			project = models.Project{
				Name:          projectData.Name,
				ClientName:    projectData.ClientName,
				Address:       projectData.Address,
				CoverImageURL: projectData.CoverImageURL,
				Status:        status,
				Notes:         projectData.Notes,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query project: %w", err)
		}
	}

	return &project, false, nil // created = false (existing)
}

func createSection(db *gorm.DB, sectionData SectionData, projectMap map[string]*models.Project) (*models.Section, bool, error) {
	project := projectMap[sectionData.ProjectName]
	if project == nil {
		return nil, false, fmt.Errorf("project %s not found for section %s", sectionData.ProjectName, sectionData.Name)
	}

	var section models.Section
	if err := db.Where("name = ? AND project_id = ?", sectionData.Name, project.ID).First(&section).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			section = models.Section{
				ProjectID: project.ID,
				Name:      sectionData.Name,
			}

			if err := db.Create(&section).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create section: %w", err)
			}
			return &section, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query section: %w", err)
		}
	}

	return &section, false, nil // created = false (existing)
}

func createRoom(db *gorm.DB, roomData RoomData, projectMap map[string]*models.Project, sectionMap map[string]*models.Section) (bool, error) {
	project := projectMap[roomData.ProjectName]
	if project == nil {
		return false, fmt.Errorf("project %s not found", roomData.ProjectName)
	}

	roomType := models.RoomType(roomData.RoomType)
	if !roomType.IsValid() {
		return false, fmt.Errorf("unknown room type %s", roomData.RoomType)
	}

	var sectionID *uuid.UUID
	if roomData.SectionName != "" {
		section := sectionMap[roomData.ProjectName+"/"+roomData.SectionName]
		if section == nil {
			return false, fmt.Errorf("section %s not found", roomData.SectionName)
		}
		sectionID = &section.ID
	}

	// Skip rooms already seeded (same project, bucket, type and name)
	query := db.Where("project_id = ? AND room_type = ? AND custom_name = ?", project.ID, roomType, roomData.CustomName)
	if sectionID == nil {
		query = query.Where("section_id IS NULL")
	} else {
		query = query.Where("section_id = ?", *sectionID)
	}
	var existing models.Room
	if err := query.First(&existing).Error; err == nil {
		return false, nil
	} else if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query room: %w", err)
	}

	// Append to the end of the destination bucket
	sortOrder, err := nextSortOrder(db, project.ID, sectionID)
	if err != nil {
		return false, err
	}

	status := models.RoomStatusConcept
	if roomData.Status != "" {
		status = models.RoomStatus(roomData.Status)
	}

	room := models.Room{
		ProjectID:  project.ID,
		SectionID:  sectionID,
		RoomType:   roomType,
		CustomName: roomData.CustomName,
		SortOrder:  sortOrder,
		Status:     status,
	}

	if err := db.Create(&room).Error; err != nil {
		return false, fmt.Errorf("failed to create room: %w", err)
	}
	return true, nil
}

func nextSortOrder(db *gorm.DB, projectID uuid.UUID, sectionID *uuid.UUID) (int, error) {
	var result struct {
		Max *int
	}
	query := db.Model(&models.Room{}).Select("MAX(sort_order) AS max").Where("project_id = ?", projectID)
	if sectionID == nil {
		query = query.Where("section_id IS NULL")
	} else {
		query = query.Where("section_id = ?", *sectionID)
	}
	if err := query.Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to query sort order: %w", err)
	}
	if result.Max == nil {
		return 0, nil
	}
	return *result.Max + 1, nil
}

func createContractor(db *gorm.DB, contractorData ContractorData) (*models.Contractor, bool, error) {
	var contractor models.Contractor
	if err := db.Where("email = ?", contractorData.Email).First(&contractor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			contractor = models.Contractor{
				Name:  contractorData.Name,
				Trade: contractorData.Trade,
				Email: contractorData.Email,
				Phone: contractorData.Phone,
			}

			if err := db.Create(&contractor).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create contractor: %w", err)
			}
			return &contractor, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query contractor: %w", err)
		}
	}

	return &contractor, false, nil // created = false (existing)
}

func assignContractor(db *gorm.DB, contractor *models.Contractor, projectNames []string, projectMap map[string]*models.Project) int {
	created := 0
	for _, projectName := range projectNames {
		project := projectMap[projectName]
		if project == nil {
			log.Printf("Warning: project %s not found for contractor %s", projectName, contractor.Name)
			continue
		}

		var existing models.ProjectContractor
		err := db.Where("project_id = ? AND contractor_id = ?", project.ID, contractor.ID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			assignment := models.ProjectContractor{
				ProjectID:    project.ID,
				ContractorID: contractor.ID,
			}
			if err := db.Create(&assignment).Error; err != nil {
				log.Printf("Warning: failed to assign contractor %s to project %s: %v", contractor.Name, projectName, err)
			} else {
				created++
			}
		}
	}
	return created
}
