package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchTemplate calls onChange with the new contents of path each time it is
// written or recreated, until ctx is done. The parent directory is watched so
// that editors replacing the file by rename are still seen.
func watchTemplate(ctx context.Context, path string, logger *zap.Logger, onChange func(source string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgWatchFailed, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgWatchFailed, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgWatchFailed, err)
	}
	logger.Info(LogMsgWatchStarted, zap.String(LogFieldPath, abs))

	for {
		select {
		case <-ctx.Done():
			logger.Info(LogMsgWatchStopped, zap.String(LogFieldPath, abs))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			logger.Debug(LogMsgWatchEvent,
				zap.String(LogFieldPath, event.Name),
				zap.String(LogFieldOp, event.Op.String()),
			)

			data, err := os.ReadFile(abs)
			if err != nil {
				logger.Warn(LogMsgWatchError, zap.Error(err))
				continue
			}
			onChange(string(data))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(LogMsgWatchError, zap.Error(err))
		}
	}
}
