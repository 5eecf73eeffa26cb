package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ospolov/fieldsync/internal/client/netmon"
	"github.com/ospolov/fieldsync/internal/client/offline"
	syncengine "github.com/ospolov/fieldsync/internal/client/sync"
	"github.com/ospolov/fieldsync/pkg/api"
)

// PrintUsage prints the command summary
func PrintUsage() {
	fmt.Fprintln(os.Stderr, `Usage: fieldsync [flags] <command> [args]

Commands:
  store <id> <json|@file>     capture a form record offline
  get <id>                    print a locally stored form
  list                        list locally stored forms
  attach <id> <file> [form]   capture a binary attachment offline
  delete <id>                 queue a form deletion
  status                      show queue and storage status
  sync                        trigger a drain of the sync queue
  run                         stay resident: watch connectivity, drain on restore

Flags:
  -config  path to YAML config
  -server  server URL override
  -db      path to local database
  -version show version information`)
}

// RunStore captures a form record offline
func RunStore(ctx context.Context, args []string, svc offline.Service, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: store <id> <json|@file>")
	}
	id := args[0]

	data, err := readPayload(args[1])
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("form payload is not valid JSON")
	}

	queued, err := svc.StoreForm(ctx, id, data)
	if err != nil {
		return err
	}

	if queued {
		fmt.Fprintf(w, "Form %s stored offline and queued for sync\n", id)
	} else {
		fmt.Fprintf(w, "Form %s sent directly (offline storage unavailable)\n", id)
	}
	return nil
}

// RunGet prints a locally stored form
func RunGet(ctx context.Context, args []string, svc offline.Service, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: get <id>")
	}

	record, err := svc.GetForm(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Key:         %s\n", record.Key)
	fmt.Fprintf(w, "Sync status: %s\n", record.SyncStatus)
	fmt.Fprintf(w, "Updated:     %s\n", record.LastUpdated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "%s\n", record.Data)
	return nil
}

// RunList lists locally stored forms
func RunList(ctx context.Context, svc offline.Service, w io.Writer) error {
	records, err := svc.ListForms(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No forms stored offline")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(w, "%-40s %-8s %s\n",
			record.Key, record.SyncStatus,
			record.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// RunAttach captures a binary attachment offline
func RunAttach(ctx context.Context, args []string, svc offline.Service, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: attach <id> <file> [form_id]")
	}
	id, path := args[0], args[1]

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read attachment file: %w", err)
	}

	meta := api.AttachmentMeta{
		FileName:    filepath.Base(path),
		ContentType: contentTypeFor(path),
	}
	if len(args) > 2 {
		meta.FormID = args[2]
	}

	queued, err := svc.StoreAttachment(ctx, id, blob, meta)
	if err != nil {
		return err
	}

	if queued {
		fmt.Fprintf(w, "Attachment %s (%d bytes) stored offline and queued for sync\n", id, len(blob))
	} else {
		fmt.Fprintf(w, "Attachment %s uploaded directly (offline storage unavailable)\n", id)
	}
	return nil
}

// RunDelete queues a form deletion
func RunDelete(ctx context.Context, args []string, svc offline.Service, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: delete <id>")
	}

	if err := svc.DeleteForm(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(w, "Deletion of form %s queued for sync\n", args[0])
	return nil
}

// RunStatus shows queue depth, storage usage and connectivity
func RunStatus(ctx context.Context, svc offline.Service, monitor *netmon.Monitor, w io.Writer) error {
	pending, err := svc.PendingCount(ctx)
	if err != nil {
		return err
	}
	info, err := svc.Info(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Pending mutations: %d\n", pending)
	fmt.Fprintf(w, "Stored forms:      %d\n", info.FormCount)
	fmt.Fprintf(w, "Stored attachments: %d\n", info.AttachmentCount)
	fmt.Fprintf(w, "Storage size:      %d bytes\n", info.SizeBytes)

	if monitor != nil {
		monitor.Check(ctx)
		state := monitor.State()
		if state.Online {
			fmt.Fprintf(w, "Network:           online (%s, %.1f Mbps)\n",
				state.EffectiveType, state.DownlinkMbps)
		} else {
			fmt.Fprintln(w, "Network:           offline")
		}
	}
	return nil
}

// RunSync triggers a drain and reports the outcome
func RunSync(ctx context.Context, engine *syncengine.Engine, w io.Writer) error {
	result, err := engine.Drain(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Synced %d of %d queued items", result.Synced, result.Total)
	if result.Abandoned > 0 {
		fmt.Fprintf(w, " (%d abandoned)", result.Abandoned)
	}
	fmt.Fprintln(w)
	return nil
}

// readPayload returns inline JSON or, for @path arguments, file contents
func readPayload(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return data, nil
	}
	return []byte(arg), nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
