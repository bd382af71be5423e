package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	defaultAccessLogLimit = 100

	errUserNotFound = "user not found"
	errUnitNotFound = "unit not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedGetUserFmt   = "failed to get user: %w"
	errFailedListUsersFmt = "failed to list users: %w"
	errFailedScanUserFmt  = "failed to scan user: %w"
	errIterateUsersFmt    = "error iterating users: %w"

	errFailedGetUnitFmt   = "failed to get unit: %w"
	errFailedListUnitsFmt = "failed to list units: %w"
	errFailedScanUnitFmt  = "failed to scan unit: %w"
	errIterateUnitsFmt    = "error iterating units: %w"

	errFailedCreateAccessLogFmt = "failed to create access log entry: %w"
	errFailedListAccessLogsFmt  = "failed to list access log entries: %w"
	errFailedScanAccessLogFmt   = "failed to scan access log entry: %w"
	errIterateAccessLogsFmt     = "error iterating access log entries: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedGetUser              = func(err error) error { return fmt.Errorf(errFailedGetUserFmt, err) }
	errFailedListUsers            = func(err error) error { return fmt.Errorf(errFailedListUsersFmt, err) }
	errFailedScanUser             = func(err error) error { return fmt.Errorf(errFailedScanUserFmt, err) }
	errIterateUsers               = func(err error) error { return fmt.Errorf(errIterateUsersFmt, err) }
	errFailedGetUnit              = func(err error) error { return fmt.Errorf(errFailedGetUnitFmt, err) }
	errFailedListUnits            = func(err error) error { return fmt.Errorf(errFailedListUnitsFmt, err) }
	errFailedScanUnit             = func(err error) error { return fmt.Errorf(errFailedScanUnitFmt, err) }
	errIterateUnits               = func(err error) error { return fmt.Errorf(errIterateUnitsFmt, err) }
	errFailedCreateAccessLog      = func(err error) error { return fmt.Errorf(errFailedCreateAccessLogFmt, err) }
	errFailedListAccessLogs       = func(err error) error { return fmt.Errorf(errFailedListAccessLogsFmt, err) }
	errFailedScanAccessLog        = func(err error) error { return fmt.Errorf(errFailedScanAccessLogFmt, err) }
	errIterateAccessLogs          = func(err error) error { return fmt.Errorf(errIterateAccessLogsFmt, err) }
)
