package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"timesheet/backend/internal/dto"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir, outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "导出工时表为 Excel（.xlsx）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := opts.requireUser()
			if err != nil {
				return err
			}
			start, end, err := resolveRange(opts.from, opts.to, time.Now())
			if err != nil {
				return err
			}

			buf, filename, err := opts.app.Export.ExportTimesheet(cmd.Context(), cliActor, &dto.ExportRequest{
				UserID:    userID,
				StartDate: start,
				EndDate:   end,
			})
			if err != nil {
				return err
			}

			path := outFile
			if path == "" {
				path = filepath.Join(outDir, filename)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("写入导出文件失败: %w", err)
			}

			printf(cmd.OutOrStdout(), "已导出 %s（%d 字节）\n", path, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "输出目录，文件名自动生成")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "输出文件完整路径（优先于 --dir）")
	return cmd
}
