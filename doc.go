/*Package ptfmine implements the core mining engine of a Top-K Frequent
Itemset Mining system based on Prefix-partitioned Top-k Frequent itemset
mining (PTF).

Given a transaction database (a multiset of transactions over an item
universe) and an integer k, Mine returns the k itemsets of two or more
items with the highest supports, together with their supports. Single-item
itemsets are not returned.

The engine preprocesses the database into a vertical tidset representation
(package tidset) and a sparse co-occurrence matrix (package cooccur), builds
one prefix partition per frequent item (package partition), mines each
partition with a high-support-first expansion loop (package expand) bounded
by a rolling top-k heap (package topk), and — in parallel mode — fans
partitions out across a fixed worker pool whose results are folded into a
single global heap by this package's orchestrator.

CLI and JSON configuration loading, logging sinks, dataset file I/O beyond
the txsource.Source interface, and benchmark harnesses are the concern of
external callers, not this package.
*/
package ptfmine
