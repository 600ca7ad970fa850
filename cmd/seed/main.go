package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/platform/config"
	firestoreclient "github.com/gearlane/recon-tracker/internal/platform/firestore"
	"github.com/gearlane/recon-tracker/internal/repository"
)

// Seeds a dealership with the default checklist registry and a settings
// document so a fresh project is immediately usable.
func main() {
	dealership := flag.String("dealership", "", "dealership ID to seed (defaults to DEFAULT_DEALERSHIP_ID)")
	name := flag.String("name", "Demo Dealership", "dealership display name")
	force := flag.Bool("force", false, "overwrite an existing section registry")
	flag.Parse()

	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dealership == "" {
		*dealership = cfg.DefaultDealershipID
	}

	client, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	log.Printf("Connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)
	fmt.Printf("Seeding dealership %q...\n", *dealership)

	sectionRepo := repository.NewSectionRepository(client)
	settingsRepo := repository.NewSettingsRepository(client)

	existing, err := sectionRepo.ListSections(ctx, *dealership)
	if err != nil {
		log.Fatalf("Failed to list sections: %v", err)
	}
	if len(existing) > 0 && !*force {
		fmt.Printf("Section registry already has %d sections, skipping (use -force to overwrite)\n", len(existing))
	} else {
		defaults := inspection.DefaultSections()
		if err := sectionRepo.ReplaceSections(ctx, *dealership, defaults); err != nil {
			log.Fatalf("Failed to write section registry: %v", err)
		}
		fmt.Printf("✓ Wrote %d default sections\n", len(defaults))
	}

	settings, err := settingsRepo.GetSettings(ctx, *dealership)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if settings.Name == "" {
		settings.Name = *name
	}
	if err := settingsRepo.SaveSettings(ctx, *dealership, settings); err != nil {
		log.Fatalf("Failed to save settings: %v", err)
	}
	fmt.Printf("✓ Settings saved for %q (%s)\n", *dealership, settings.Name)

	fmt.Println("Seed completed successfully!")
}
