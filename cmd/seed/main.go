// Command seed populates the entity collections with their starter
// rows. Without -force it only fills collections whose key is missing,
// matching the lazy seeding the server performs on first read.
package main

import (
	"context"
	"flag"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/drivers/database"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing collections with the seed rows")
	flag.Parse()

	driverConfig := config.NewDriverConfig()

	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	kv := kvstore.NewRedisStore(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedCollection(ctx, collection.NewStore(kv, constvars.StorageKeyPatients, models.SeedPatients), constvars.StorageKeyPatients, *force)
	seedCollection(ctx, collection.NewStore(kv, constvars.StorageKeyDoctors, models.SeedDoctors), constvars.StorageKeyDoctors, *force)
	seedCollection(ctx, collection.NewStore(kv, constvars.StorageKeyAppointments, models.SeedAppointments), constvars.StorageKeyAppointments, *force)
	seedCollection(ctx, collection.NewStore(kv, constvars.StorageKeyMedicalRecords, models.SeedMedicalRecords), constvars.StorageKeyMedicalRecords, *force)

	logrus.Println("Seeding finished")
}

func seedCollection[T any](ctx context.Context, store *collection.Store[T], key string, force bool) {
	if force {
		if err := store.SaveAll(ctx, store.Seed()); err != nil {
			logrus.Fatalf("Failed to overwrite %s: %v", key, err)
		}
		logrus.Printf("Overwrote %s with seed rows", key)
		return
	}

	items, err := store.LoadAll(ctx)
	if err != nil {
		logrus.Fatalf("Failed to seed %s: %v", key, err)
	}
	logrus.Printf("Collection %s holds %d rows", key, len(items))
}
