package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/jmagwili/launchpad-jia/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test fixtures seeded into the container database.
var (
	TestPlanStarter m.OrganizationPlan
	TestPlanGrowth  m.OrganizationPlan

	// TestOrgMain has the growth plan and room to spare.
	TestOrgMain m.Organization
	// TestOrgQuota has the starter plan (limit 3) and three seeded active
	// careers, i.e. it sits exactly at its ceiling.
	TestOrgQuota m.Organization
	// TestOrgNoPlan has no plan reference; the default limit applies.
	TestOrgNoPlan m.Organization

	TestRecruiter1 m.User
	TestRecruiter2 m.User

	TestCareerDraft  m.Career
	TestCareerActive m.Career
)

// GetTestDB starts a PostgreSQL test container and returns a teardown
// function, the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts plans, organizations, recruiters and careers if empty.
func seedTestData(db *DBinstanceStruct) error {
	var orgCount int64
	if err := db.Model(&m.Organization{}).Count(&orgCount).Error; err != nil {
		return err
	}
	if orgCount > 0 {
		return loadTestData(db)
	}

	plans := []m.OrganizationPlan{
		{Name: "Starter", JobLimit: 3},
		{Name: "Growth", JobLimit: 10},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}
	TestPlanStarter = plans[0]
	TestPlanGrowth = plans[1]

	orgs := []m.Organization{
		{Name: "Juan Interactive", PlanID: &TestPlanGrowth.ID},
		{Name: "Maharlika Staffing", PlanID: &TestPlanStarter.ID},
		{Name: "Sampaguita Labs"},
	}
	if err := db.Create(&orgs).Error; err != nil {
		return err
	}
	TestOrgMain = orgs[0]
	TestOrgQuota = orgs[1]
	TestOrgNoPlan = orgs[2]

	recruiters := []m.User{
		{
			Email: "recruiter1@example.com",
			Name:  "Ramon Cruz",
			Image: "https://example.com/avatars/ramon.png",
			OrgID: &TestOrgMain.ID,
		},
		{
			Email: "recruiter2@example.com",
			Name:  "Liza Santos",
			Image: "https://example.com/avatars/liza.png",
			OrgID: &TestOrgQuota.ID,
		},
	}
	if err := db.Create(&recruiters).Error; err != nil {
		return err
	}
	TestRecruiter1 = recruiters[0]
	TestRecruiter2 = recruiters[1]

	author := TestRecruiter1.Snapshot()
	careers := []m.Career{
		{
			OrgID: TestOrgMain.ID,
			EditableCareerInfo: m.EditableCareerInfo{
				JobTitle:         "Backend Engineer",
				Description:      "<p>Build Go services.</p>",
				EmploymentType:   m.EmploymentFullTime,
				WorkSetup:        m.WorkSetupHybrid,
				Country:          "Philippines",
				Province:         "Metro Manila",
				Location:         "Makati",
				ScreeningSetting: m.ScreeningGoodFitAndAbove,
				Questions: m.QuestionCategories{
					{ID: 1, Category: "Technical", Questions: []m.InterviewQuestion{{Question: "Describe a service you own."}}},
				},
			},
			Status:         m.CareerStatusDraft,
			CreatedBy:      author,
			LastEditedBy:   author,
			LastActivityAt: time.Now(),
		},
		{
			OrgID: TestOrgMain.ID,
			EditableCareerInfo: m.EditableCareerInfo{
				JobTitle:         "Product Designer",
				Description:      "<p>Own the design system.</p>",
				EmploymentType:   m.EmploymentFullTime,
				WorkSetup:        m.WorkSetupRemote,
				Country:          "Philippines",
				Province:         "Cebu",
				Location:         "Cebu City",
				ScreeningSetting: m.ScreeningOnlyStrongFit,
				Questions: m.QuestionCategories{
					{ID: 1, Category: "Behavioral", Questions: []m.InterviewQuestion{{Question: "Walk through a recent design review."}}},
				},
			},
			Status:         m.CareerStatusActive,
			CreatedBy:      author,
			LastEditedBy:   author,
			LastActivityAt: time.Now(),
		},
	}
	if err := db.Create(&careers).Error; err != nil {
		return err
	}
	TestCareerDraft = careers[0]
	TestCareerActive = careers[1]

	// Fill TestOrgQuota to its ceiling with active careers.
	author2 := TestRecruiter2.Snapshot()
	quotaCareers := make([]m.Career, 0, 3)
	for i, title := range []string{"Recruitment Lead", "Sourcing Specialist", "HR Generalist"} {
		quotaCareers = append(quotaCareers, m.Career{
			OrgID: TestOrgQuota.ID,
			EditableCareerInfo: m.EditableCareerInfo{
				JobTitle:         title,
				Description:      fmt.Sprintf("<p>Posting %d.</p>", i+1),
				EmploymentType:   m.EmploymentFullTime,
				WorkSetup:        m.WorkSetupOnsite,
				Country:          "Philippines",
				Province:         "Metro Manila",
				Location:         "Taguig",
				ScreeningSetting: m.ScreeningGoodFitAndAbove,
				Questions: m.QuestionCategories{
					{ID: 1, Category: "Others", Questions: []m.InterviewQuestion{{Question: "Why this role?"}}},
				},
			},
			Status:         m.CareerStatusActive,
			CreatedBy:      author2,
			LastEditedBy:   author2,
			LastActivityAt: time.Now(),
		})
	}
	if err := db.Create(&quotaCareers).Error; err != nil {
		return err
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestPlanStarter, "name = ?", "Starter").Error; err != nil {
		return err
	}
	if err := db.First(&TestPlanGrowth, "name = ?", "Growth").Error; err != nil {
		return err
	}
	if err := db.First(&TestOrgMain, "name = ?", "Juan Interactive").Error; err != nil {
		return err
	}
	if err := db.First(&TestOrgQuota, "name = ?", "Maharlika Staffing").Error; err != nil {
		return err
	}
	if err := db.First(&TestOrgNoPlan, "name = ?", "Sampaguita Labs").Error; err != nil {
		return err
	}
	if err := db.First(&TestRecruiter1, "email = ?", "recruiter1@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestRecruiter2, "email = ?", "recruiter2@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestCareerDraft, "org_id = ? AND status = ?", TestOrgMain.ID, m.CareerStatusDraft).Error; err != nil {
		return err
	}
	return db.First(&TestCareerActive, "org_id = ? AND status = ?", TestOrgMain.ID, m.CareerStatusActive).Error
}
