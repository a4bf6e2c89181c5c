// containers.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbNetworkAlias    = "mariadb"
	redisNetworkAlias = "redis"
	authzNetworkAlias = "authorizer"
)

// TestContainers is a MariaDB and redis harness, plus the authorizer and a
// prebuilt server image when their images are configured.
// Everything is read from the environment, usually loaded from a .env file.
type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	RedisContainer      testcontainers.Container
	AuthorizerContainer testcontainers.Container
	AppContainer        testcontainers.Container

	dbPort    nat.Port
	redisPort nat.Port
}

// Terminate stops every started container and removes the network
func (tc *TestContainers) Terminate(t testing.TB) {
	ctx := context.Background()
	for _, c := range []struct {
		name      string
		container testcontainers.Container
	}{
		{"server", tc.AppContainer},
		{"Authorizer", tc.AuthorizerContainer},
		{"redis", tc.RedisContainer},
		{"MariaDB", tc.DBContainer},
	} {
		if c.container == nil {
			continue
		}
		if err := c.container.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", c.name, err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// StartContainers starts the harness. On failure everything already started is terminated.
func StartContainers(ctx context.Context, t testing.TB) (*TestContainers, error) {
	tc := &TestContainers{}
	if err := tc.start(ctx, t); err != nil {
		tc.Terminate(t)
		return nil, err
	}
	logMessage(t, "waitinglist testcontainers started successfully")
	return tc, nil
}

func (tc *TestContainers) start(ctx context.Context, t testing.TB) error {
	nw, err := network.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw

	if err := tc.startMariaDB(ctx, t); err != nil {
		return err
	}
	if err := tc.startRedis(ctx, t); err != nil {
		return err
	}
	if os.Getenv("AUTHZ_IMAGE") != "" {
		if err := tc.startAuthorizer(ctx, t); err != nil {
			return err
		}
	}
	if appImage := os.Getenv("APP_IMAGE"); appImage != "" {
		exists, err := imageExists(ctx, appImage)
		if err != nil {
			return fmt.Errorf("failed to check if image exists: %w", err)
		}
		if !exists {
			logMessage(t, "Image %s does not exist, skipping the server container", appImage)
			return nil
		}
		return tc.startApp(ctx, t, appImage)
	}
	return nil
}

func (tc *TestContainers) startMariaDB(ctx context.Context, t testing.TB) error {
	port, err := nat.NewPort("tcp", envOr("DB_PORT", "3306"))
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
				"MYSQL_DATABASE":      os.Getenv("DB_APP_DATABASE"),
				"MYSQL_USER":          os.Getenv("DB_APP_USER"),
				"MYSQL_PASSWORD":      os.Getenv("DB_APP_PASSWORD"),
			},
			WaitingFor: wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
			Networks:   []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {dbNetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start MariaDB: %w", err)
	}
	tc.DBContainer = c
	tc.dbPort = port

	host, err := c.Host(ctx)
	if err != nil {
		return err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return err
	}
	logMessage(t, "DB_HOST=%s DB_PORT=%s", host, mapped.Port())

	return initMariaDB(host, mapped.Port())
}

func (tc *TestContainers) startRedis(ctx context.Context, t testing.TB) error {
	port := nat.Port("6379/tcp")

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("REDIS_IMAGE", "redis:7-alpine"),
			ExposedPorts: []string{string(port)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Networks:     []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {redisNetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start redis: %w", err)
	}
	tc.RedisContainer = c
	tc.redisPort = port

	host, _ := c.Host(ctx)
	mapped, _ := c.MappedPort(ctx, port)
	logMessage(t, "REDIS_ADDR=%s:%s", host, mapped.Port())
	return nil
}

func (tc *TestContainers) startAuthorizer(ctx context.Context, t testing.TB) error {
	port, err := nat.NewPort("tcp", envOr("AUTHZ_PORT", "8080"))
	if err != nil {
		return fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	logLevel := "info"
	if os.Getenv("DEBUG_CONTAINER") == "true" {
		logLevel = "debug"
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          port.Port(),
				"DATABASE_TYPE": "mariadb",
				"DATABASE_NAME": os.Getenv("AUTHZ_DATABASE"),
				"DATABASE_URL": fmt.Sprintf("root:%s@tcp(%s:%s)/%s",
					os.Getenv("DB_ROOT_PASSWORD"), dbNetworkAlias, tc.dbPort.Port(), os.Getenv("AUTHZ_DATABASE")),
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     logLevel,
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
			Networks:   []string{tc.Network.Name},
			NetworkAliases: map[string][]string{
				tc.Network.Name: {authzNetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start Authorizer: %w", err)
	}
	tc.AuthorizerContainer = c

	host, _ := c.Host(ctx)
	mapped, _ := c.MappedPort(ctx, port)
	logMessage(t, "AUTHZ_URL=http://%s:%s", host, mapped.Port())
	return nil
}

func (tc *TestContainers) startApp(ctx context.Context, t testing.TB, appImage string) error {
	debug := os.Getenv("DEBUG_CONTAINER") == "true"

	port, err := nat.NewPort("tcp", envOr("PORT", "3000"))
	if err != nil {
		return fmt.Errorf("failed to create server port: %w", err)
	}
	exposed := []string{string(port)}
	if debug {
		exposed = append(exposed, "2345/tcp")
	}

	var waitStrategy wait.Strategy = wait.ForHTTP("/healthz").WithPort(port).WithStartupTimeout(30 * time.Second)
	if debug {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	req := testcontainers.ContainerRequest{
		Image:        appImage,
		ExposedPorts: exposed,
		Env: map[string]string{
			"DB_TYPE":         "mariadb",
			"DB_HOST":         dbNetworkAlias,
			"DB_PORT":         tc.dbPort.Port(),
			"DB_APP_DATABASE": os.Getenv("DB_APP_DATABASE"),
			"DB_APP_USER":     os.Getenv("DB_APP_USER"),
			"DB_APP_PASSWORD": os.Getenv("DB_APP_PASSWORD"),
			"AUTHZ_URL":       fmt.Sprintf("http://%s:%s", authzNetworkAlias, envOr("AUTHZ_PORT", "8080")),
			"AUTHZ_CLIENT_ID": os.Getenv("AUTHZ_CLIENT_ID"),
			"BLOB_BACKEND":    "redis",
			"REDIS_ADDR":      fmt.Sprintf("%s:%s", redisNetworkAlias, tc.redisPort.Port()),
			"PORT":            port.Port(),
		},
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			if debug {
				hostConfig.PortBindings = nat.PortMap{
					"2345/tcp": []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "2345"}},
				}
				hostConfig.CapAdd = []string{"SYS_PTRACE"}
				hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
			}
		},
		WaitingFor: waitStrategy,
		Networks:   []string{tc.Network.Name},
	}
	if debug {
		req.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./waitinglist",
		}
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	tc.AppContainer = c

	host, _ := c.Host(ctx)
	mapped, _ := c.MappedPort(ctx, port)
	logMessage(t, "BASE_URL=http://%s:%s", host, mapped.Port())
	return nil
}

// Config returns a configuration reaching the harness from the host, with redis blobs
func (tc *TestContainers) Config(ctx context.Context) (*config.Config, error) {
	dbHost, err := tc.DBContainer.Host(ctx)
	if err != nil {
		return nil, err
	}
	dbPort, err := tc.DBContainer.MappedPort(ctx, tc.dbPort)
	if err != nil {
		return nil, err
	}
	redisHost, err := tc.RedisContainer.Host(ctx)
	if err != nil {
		return nil, err
	}
	redisPort, err := tc.RedisContainer.MappedPort(ctx, tc.redisPort)
	if err != nil {
		return nil, err
	}

	return &config.Config{
		DBType:               "mariadb",
		DBHost:               dbHost,
		DBPort:               dbPort.Port(),
		DBAppDatabase:        os.Getenv("DB_APP_DATABASE"),
		DBAppUser:            os.Getenv("DB_APP_USER"),
		DBAppPassword:        os.Getenv("DB_APP_PASSWORD"),
		DBAppConnectionLimit: 5,
		AuthzURL:             envOr("AUTHZ_URL", "http://localhost:8080"),
		AuthzClientID:        envOr("AUTHZ_CLIENT_ID", "test-client"),
		LogLevel:             "error",
		Locale:               "en-GB",
		Timezone:             "UTC",
		BlobBackend:          "redis",
		RedisAddr:            fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
		MaintenanceInterval:  24 * time.Hour,
	}, nil
}

// initMariaDB creates the application and authorizer databases and users
func initMariaDB(host, port string) error {
	db, err := sql.Open("mysql", database.MySQLDSN("root", os.Getenv("DB_ROOT_PASSWORD"), host, port, ""))
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB for setup: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("DB_APP_DATABASE")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_APP_USER"), os.Getenv("DB_APP_PASSWORD")),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", os.Getenv("DB_APP_DATABASE"), os.Getenv("DB_APP_USER")),
	}
	if authzDB := os.Getenv("AUTHZ_DATABASE"); authzDB != "" {
		statements = append(statements,
			fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", authzDB),
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.authorizer_users (id CHAR(36) NOT NULL PRIMARY KEY)", authzDB),
		)
	}
	statements = append(statements, "FLUSH PRIVILEGES")

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t testing.TB, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
