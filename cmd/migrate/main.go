package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taskhub/backend/internal/domain/identity"
	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/task"
	"github.com/taskhub/backend/internal/infrastructure/config"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/infrastructure/persistence"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

func main() {
	var (
		logLevel string
		seed     bool
	)
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&seed, "seed", false, "Insert demo data after migrating")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.String("host", cfg.Database.Host),
	)

	if err := db.DB.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.MemberModel{},
		&models.TaskModel{},
		&models.CommentModel{},
		&models.ActivityModel{},
	); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Migration completed successfully")

	if seed {
		if err := seedDemoData(db, log); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Demo data seeded")
	}
}

// seedDemoData creates an admin account, a demo project and a couple of
// tasks. Safe to run once against an empty database.
func seedDemoData(db *persistence.Database, log *zap.Logger) error {
	ctx := context.Background()

	userRepo := persistence.NewGormUserRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)

	exists, err := userRepo.ExistsByEmail(ctx, "admin@taskhub.local")
	if err != nil {
		return err
	}
	if exists {
		log.Info("Demo data already present, skipping seed")
		return nil
	}

	admin, err := identity.NewUser("admin@taskhub.local", "change-me-n0w", "Administrator")
	if err != nil {
		return err
	}
	if err := admin.GrantRole(identity.RoleAdmin); err != nil {
		return err
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	member, err := identity.NewUser("demo@taskhub.local", "change-me-n0w", "Demo User")
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, member); err != nil {
		return err
	}

	p, err := project.NewProject(admin.ID, "Getting Started", "A sample project to explore TaskHub", "#4287f5", nil, nil)
	if err != nil {
		return err
	}
	if err := projectRepo.Create(ctx, p); err != nil {
		return err
	}

	m, err := project.NewMember(p.ID, member.ID, project.MemberRoleMember)
	if err != nil {
		return err
	}
	if err := memberRepo.Create(ctx, m); err != nil {
		return err
	}

	titles := []string{"Invite your team", "Create your first real project"}
	for _, title := range titles {
		tk, err := task.NewTask(p.ID, admin.ID, title, task.NewTaskInput{
			Priority: task.PriorityMedium,
		})
		if err != nil {
			return err
		}
		if err := taskRepo.Create(ctx, tk); err != nil {
			return err
		}
	}

	return nil
}
