package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/CyberVigilant/CoopStation-01/pkg/cache"
	"github.com/CyberVigilant/CoopStation-01/pkg/config"
	"github.com/CyberVigilant/CoopStation-01/pkg/database"
	"github.com/CyberVigilant/CoopStation-01/pkg/geo"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/models"
	"github.com/CyberVigilant/CoopStation-01/pkg/taxonomy"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "Test12345"

var companies = []string{
	"AON",
	"Deloitte",
	"SAB",
	"Saudi Tadawul Group",
	"Webook",
	"Digital Government Authority",
	"GOSI",
	"Riyadh Air",
	"JASARA PMC",
	"TAWAL",
}

var titles = []string{
	"Software Engineering Co-op",
	"Data Analyst Intern",
	"Cybersecurity Trainee",
	"Marketing Co-op Program",
	"Finance Graduate Trainee",
	"HR Co-op Opportunity",
	"Supply Chain Intern",
	"UX Design Co-op",
	"Accounting Trainee",
	"Project Management Intern",
}

var majors = []string{
	"Computer Science",
	"Software Engineering",
	"Information Systems",
	"Cybersecurity",
	"Finance",
	"Accounting",
	"Marketing",
	"Industrial Engineering",
	"Human Resources",
}

var firstNames = []string{"Abdullah", "Sara", "Mohammed", "Noura", "Faisal", "Lama", "Khalid", "Reem", "Omar", "Hessa"}
var lastNames = []string{"Alqahtani", "Alotaibi", "Alharbi", "Alshehri", "Aldossari", "Alghamdi", "Almutairi", "Alzahrani"}

// Roughly one in four demo opportunities is closed.
var statuses = []models.OpportunityStatus{models.StatusOpen, models.StatusOpen, models.StatusOpen, models.StatusClosed}

func main() {
	var (
		students   = flag.Int("students", 10, "number of demo students")
		opps       = flag.Int("opps", 30, "number of demo opportunities")
		subs       = flag.Int("subs", 20, "number of demo submissions")
		ratings    = flag.Int("ratings", 25, "number of demo ratings")
		reports    = flag.Int("reports", 3, "number of demo reports")
		seedVal    = flag.Int64("seed", 0, "random seed (0 uses current time)")
		resetOpps  = flag.Bool("reset-opps", false, "delete existing opportunities first")
		resetUsers = flag.Bool("reset-users", false, "delete existing demo students first")
	)
	flag.Parse()

	log := logger.New()

	if *resetOpps && *opps == 0 {
		log.Error("Refusing --reset-opps with --opps 0, that would leave an empty listing")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, skipping feed caching: %v", err)
		redisClient = nil
	}

	if *seedVal == 0 {
		*seedVal = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seedVal))

	if *resetUsers {
		log.Info("Deleting demo students...")
		db.Where("role = ?", models.RoleStudent).Delete(&models.User{})
	}
	if *resetOpps {
		log.Info("Deleting existing opportunities...")
		db.Delete(&models.Opportunity{}, "1 = 1")
	}

	if err := seedDatabase(db, redisClient, rng, log, *students, *opps, *subs, *ratings, *reports); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, redisClient *redis.Client, rng *rand.Rand, log *logger.Logger, students, opps, subs, ratings, reports int) error {
	categoryIDs, err := ensureCategories(db)
	if err != nil {
		return err
	}

	studentIDs, err := seedStudents(db, rng, log, students)
	if err != nil {
		return err
	}

	oppIDs, err := seedOpportunities(db, redisClient, rng, log, categoryIDs, opps)
	if err != nil {
		return err
	}

	if len(studentIDs) == 0 || len(oppIDs) == 0 {
		return nil
	}

	seedSubmissions(db, rng, log, studentIDs, oppIDs, subs)
	seedRatings(db, rng, log, studentIDs, oppIDs, ratings)
	seedReports(db, rng, log, studentIDs, oppIDs, reports)
	return nil
}

func ensureCategories(db *gorm.DB) (map[string]string, error) {
	ids := make(map[string]string, len(taxonomy.DefaultCategories))
	for _, name := range taxonomy.DefaultCategories {
		var cat models.Category
		err := db.Where("name = ?", name).First(&cat).Error
		if err == gorm.ErrRecordNotFound {
			cat = models.Category{Name: name}
			if err := db.Create(&cat).Error; err != nil {
				return nil, fmt.Errorf("failed to create category %q: %w", name, err)
			}
		} else if err != nil {
			return nil, err
		}
		ids[name] = cat.ID
	}
	return ids, nil
}

func seedStudents(db *gorm.DB, rng *rand.Rand, log *logger.Logger, count int) ([]string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		username := fmt.Sprintf("%s_%s%d", first, last, i+1)
		email := fmt.Sprintf("%s%d@student.test", first, i+1)

		var existing models.User
		if err := db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", username)
			ids = append(ids, existing.ID)
			continue
		}

		user := models.User{
			Email:    email,
			Username: username,
			Password: string(hashed),
			Role:     models.RoleStudent,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Error("Failed to create user %s: %v", username, err)
			continue
		}

		profile := models.StudentProfile{
			UserID:   user.ID,
			FullName: first + " " + last,
			Major:    majors[rng.Intn(len(majors))],
			Phone:    fmt.Sprintf("+9665%08d", rng.Intn(100000000)),
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Error("Failed to create profile for %s: %v", username, err)
		}

		log.Info("Created student: %s (%s)", username, email)
		ids = append(ids, user.ID)
	}
	return ids, nil
}

func seedOpportunities(db *gorm.DB, redisClient *redis.Client, rng *rand.Rand, log *logger.Logger, categoryIDs map[string]string, count int) ([]string, error) {
	regions := geo.Regions()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		company := companies[rng.Intn(len(companies))]
		title := titles[rng.Intn(len(titles))]
		major := majors[rng.Intn(len(majors))]

		region := regions[rng.Intn(len(regions))]
		cities := geo.RegionsAndCities[region]
		city := cities[rng.Intn(len(cities))]

		deadline := time.Now().AddDate(0, 0, 7+rng.Intn(114))
		description := fmt.Sprintf("%s is looking for a %s student to join its %s program.", company, major, title)

		catName := taxonomy.CoerceCategory("", major, description)
		categoryID := categoryIDs[catName]

		opp := models.Opportunity{
			Company:     company,
			Title:       fmt.Sprintf("%s - %s", title, company),
			Description: description,
			Location:    region + "," + city,
			Region:      region,
			City:        city,
			Deadline:    &deadline,
			Status:      statuses[rng.Intn(len(statuses))],
			Majors:      major,
			CategoryID:  categoryID,
			SourceType:  models.SourceAdmin,
		}
		if err := db.Create(&opp).Error; err != nil {
			log.Error("Failed to create opportunity %q: %v", opp.Title, err)
			continue
		}
		ids = append(ids, opp.ID)

		cacheOpportunity(redisClient, &opp)
	}

	log.Info("Created %d opportunities", len(ids))
	return ids, nil
}

func cacheOpportunity(redisClient *redis.Client, opp *models.Opportunity) {
	if redisClient == nil {
		return
	}
	ctx := context.Background()

	key := fmt.Sprintf("opportunity:%s", opp.ID)
	data := map[string]interface{}{
		"id":       opp.ID,
		"company":  opp.Company,
		"title":    opp.Title,
		"location": opp.Location,
		"status":   string(opp.Status),
		"majors":   opp.Majors,
	}
	for k, v := range data {
		redisClient.HSet(ctx, key, k, v)
	}
	redisClient.Expire(ctx, key, 24*time.Hour)

	feedKey := "opportunities:latest"
	redisClient.LPush(ctx, feedKey, opp.ID)
	redisClient.LTrim(ctx, feedKey, 0, 999)
	redisClient.Expire(ctx, feedKey, 7*24*time.Hour)
}

func seedSubmissions(db *gorm.DB, rng *rand.Rand, log *logger.Logger, studentIDs, oppIDs []string, count int) {
	created := 0
	for i := 0; i < count; i++ {
		studentID := studentIDs[rng.Intn(len(studentIDs))]
		oppID := oppIDs[rng.Intn(len(oppIDs))]

		var existing models.Submission
		if err := db.Where("student_id = ? AND opportunity_id = ?", studentID, oppID).First(&existing).Error; err == nil {
			continue
		}

		sub := models.Submission{
			StudentID:     studentID,
			OpportunityID: oppID,
			Status:        models.SubmissionSubmitted,
			CoverNote:     "I am very interested in this opportunity.",
		}
		if err := db.Create(&sub).Error; err != nil {
			log.Error("Failed to create submission: %v", err)
			continue
		}
		created++
	}
	log.Info("Created %d submissions", created)
}

func seedRatings(db *gorm.DB, rng *rand.Rand, log *logger.Logger, studentIDs, oppIDs []string, count int) {
	created := 0
	for i := 0; i < count; i++ {
		studentID := studentIDs[rng.Intn(len(studentIDs))]
		oppID := oppIDs[rng.Intn(len(oppIDs))]

		var existing models.Rating
		if err := db.Where("student_id = ? AND opportunity_id = ?", studentID, oppID).First(&existing).Error; err == nil {
			continue
		}

		rating := models.Rating{
			StudentID:     studentID,
			OpportunityID: oppID,
			Stars:         1 + rng.Intn(5),
		}
		if err := db.Create(&rating).Error; err != nil {
			log.Error("Failed to create rating: %v", err)
			continue
		}
		created++
	}
	log.Info("Created %d ratings", created)
}

func seedReports(db *gorm.DB, rng *rand.Rand, log *logger.Logger, studentIDs, oppIDs []string, count int) {
	reasons := []string{"expired posting", "wrong company details", "duplicate listing"}

	created := 0
	for i := 0; i < count; i++ {
		report := models.Report{
			ReporterID:    studentIDs[rng.Intn(len(studentIDs))],
			OpportunityID: oppIDs[rng.Intn(len(oppIDs))],
			Reason:        reasons[rng.Intn(len(reasons))],
			Status:        models.ReportOpen,
		}
		if err := db.Create(&report).Error; err != nil {
			log.Error("Failed to create report: %v", err)
			continue
		}
		created++
	}
	log.Info("Created %d reports", created)
}
