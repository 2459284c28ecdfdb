package impl

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

const (
	logBackupLease = "log_backup"

	// backupFilePattern matches exported files left behind by earlier
	// passes that could not be verified in object storage.
	backupFilePattern = "*_logs.csv"

	// backupTimestampLayout names exported files by export time.
	backupTimestampLayout = "2006_01_02_15_04_05"
)

var backupHeader = []string{"id", "level", "message", "module", "user_id", "created_at"}

// logBackupService implements the LogBackupJob interface. A pass first
// re-uploads leftover exports from earlier failed passes, then exports aged
// rows to a fresh CSV, uploads it, verifies the object landed and only then
// deletes the local file and the database rows.
type logBackupService struct {
	logRepo   repository.LogRepository
	leaseRepo repository.LeaseRepository
	store     service.ObjectStore
	localDir  string
	minAge    time.Duration
	leaseTTL  time.Duration
	logger    *slog.Logger
}

// LogBackupServiceParams holds dependencies for logBackupService, injected by Fx.
type LogBackupServiceParams struct {
	fx.In

	LogRepo   repository.LogRepository
	LeaseRepo repository.LeaseRepository
	Store     service.ObjectStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLogBackupService is the constructor for logBackupService.
func NewLogBackupService(params LogBackupServiceParams) usecase.LogBackupJob {
	return &logBackupService{
		logRepo:   params.LogRepo,
		leaseRepo: params.LeaseRepo,
		store:     params.Store,
		localDir:  params.Config.Jobs.LogBackup.LocalDir,
		minAge:    params.Config.Jobs.LogBackup.MinAge,
		leaseTTL:  params.Config.Jobs.LeaseTTL,
		logger:    params.Logger,
	}
}

// RunOnce performs one backup pass as of the given time.
func (srv *logBackupService) RunOnce(ctx context.Context, now time.Time) error {
	holder := leaseHolder()
	acquired, err := srv.leaseRepo.Acquire(ctx, logBackupLease, holder, now.Add(srv.leaseTTL))
	if err != nil {
		return errors.Wrap(err, "failed to acquire backup lease")
	}
	if !acquired {
		srv.logger.Info("Log backup skipped, lease held elsewhere")

		return nil
	}
	defer func() {
		if err := srv.leaseRepo.Release(context.WithoutCancel(ctx), logBackupLease, holder); err != nil {
			srv.logger.Warn("Failed to release backup lease", slog.String("error", err.Error()))
		}
	}()

	srv.uploadLeftovers(ctx)

	return srv.exportAgedRows(ctx, now)
}

// uploadLeftovers retries exports a previous pass wrote but could not
// verify. Their database rows are already gone, so losing these files would
// lose the logs.
func (srv *logBackupService) uploadLeftovers(ctx context.Context) {
	leftovers, err := filepath.Glob(filepath.Join(srv.localDir, backupFilePattern))
	if err != nil {
		srv.logger.Error("Failed to scan for leftover exports", slog.String("error", err.Error()))

		return
	}

	for _, path := range leftovers {
		key := filepath.Base(path)
		if err := srv.uploadAndVerify(ctx, key, path); err != nil {
			srv.logger.Error("Failed to re-upload leftover export",
				slog.String("file", key),
				slog.String("error", err.Error()),
			)

			continue
		}

		if err := os.Remove(path); err != nil {
			srv.logger.Warn("Failed to remove uploaded export", slog.String("file", key), slog.String("error", err.Error()))

			continue
		}

		srv.logger.Info("Leftover export uploaded", slog.String("file", key))
	}
}

// exportAgedRows writes rows older than minAge to a fresh CSV and moves it
// to object storage. Rows are only deleted after the object is verified.
func (srv *logBackupService) exportAgedRows(ctx context.Context, now time.Time) error {
	records, err := srv.logRepo.FindOlderThan(ctx, now.Add(-srv.minAge))
	if err != nil {
		return errors.Wrap(err, "failed to load aged log rows")
	}
	if len(records) == 0 {
		srv.logger.Info("Log backup pass finished, nothing to export")

		return nil
	}

	fileName := now.Format(backupTimestampLayout) + "_logs.csv"
	localPath := filepath.Join(srv.localDir, fileName)

	if err := writeBackupCSV(localPath, records); err != nil {
		return errors.Wrap(err, "failed to write export file")
	}

	if err := srv.uploadAndVerify(ctx, fileName, localPath); err != nil {
		// Keep the local file and the rows; the next pass retries both.
		return errors.Wrap(err, "failed to upload export")
	}

	if err := os.Remove(localPath); err != nil {
		srv.logger.Warn("Failed to remove uploaded export", slog.String("file", fileName), slog.String("error", err.Error()))
	}

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	if err := srv.logRepo.DeleteByIDs(ctx, ids); err != nil {
		return errors.Wrap(err, "failed to delete exported log rows")
	}

	srv.logger.Info("Log backup pass finished",
		slog.String("file", fileName),
		slog.Int("rows", len(records)),
	)

	return nil
}

func (srv *logBackupService) uploadAndVerify(ctx context.Context, key, localPath string) error {
	if err := srv.store.Upload(ctx, key, localPath); err != nil {
		return err
	}

	exists, err := srv.store.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("object %s not found after upload", key)
	}

	return nil
}

// writeBackupCSV renders the log rows with a fixed header so the archive
// stays machine-readable.
func writeBackupCSV(path string, records []*entity.LogRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(backupHeader); err != nil {
		return err
	}

	for _, record := range records {
		userID := ""
		if record.UserID != nil {
			userID = record.UserID.String()
		}

		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Level,
			record.Message,
			record.Module,
			userID,
			record.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return file.Sync()
}
